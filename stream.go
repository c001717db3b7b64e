package mimekit

import "path/filepath"

// Named yields a stream name, a path-like string identifying some content.
type Named interface {
	// Name returns the stream name.
	Name() string
}

// Pathed is an optional capability for sources that already know their base
// name. The resolver prefers it over deriving the base name itself.
// Use type assertions to check for support, as with any optional capability:
//
//	if p, ok := src.(mimekit.Pathed); ok {
//	    base = p.Base()
//	}
type Pathed interface {
	Named

	// Base returns the pre-extracted base name of the stream.
	Base() string
}

// ResolveStream resolves MIME information for a named source. Sources
// implementing Pathed supply their own base name; for anything else the base
// name is derived from the raw stream name.
func (t *Table) ResolveStream(src Named) (*Resolved, error) {
	name := src.Name()

	var base string
	if p, ok := src.(Pathed); ok {
		base = p.Base()
	} else {
		base = filepath.Base(name)
	}

	return t.resolveBase(name, base)
}

// StreamName adapts a bare string to the Named interface.
type StreamName string

// Name returns the stream name
func (s StreamName) Name() string {
	return string(s)
}

// PathStream is a path-aware stream source with explicit base-name
// extraction.
type PathStream struct {
	path string
}

// NewPathStream creates a path-aware stream source for path
func NewPathStream(path string) *PathStream {
	return &PathStream{path: path}
}

// Name returns the full path
func (p *PathStream) Name() string {
	return p.path
}

// Base returns the last segment of the path
func (p *PathStream) Base() string {
	return filepath.Base(p.path)
}
