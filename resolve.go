package mimekit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolved is the MIME information derived from a file name. All fields are
// computed once at construction and never change. A Resolved holds no
// reference back to the table it was resolved against.
type Resolved struct {
	Name      string // the name as given
	Base      string // last path segment of Name
	Extension string // substring after the final "." in Base
	MIME      string // "media/type"
	Media     string
	Type      string
}

// Resolve derives the extension from name's base segment and looks up its
// MIME information. The table lookup uses the extension exactly as written;
// MIMEByExtension is the case-insensitive variant.
func (t *Table) Resolve(name string) (*Resolved, error) {
	return t.resolveBase(name, filepath.Base(name))
}

func (t *Table) resolveBase(name, base string) (*Resolved, error) {
	dot := strings.LastIndexByte(base, '.')
	if dot < 0 {
		return nil, fmt.Errorf("%w: %q has no extension segment", ErrExtensionNotFound, base)
	}
	ext := base[dot+1:]

	mime, ok := t.byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("%w: no entry for extension %q", ErrMIMENotFound, ext)
	}

	// Table entries are validated during build, so this cannot fail.
	mt, err := ParseMediaType(mime)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Name:      name,
		Base:      base,
		Extension: ext,
		MIME:      mime,
		Media:     mt.Media,
		Type:      mt.Type,
	}, nil
}

// OtherExtensions returns every extension sharing r's MIME in table order,
// excluding r's own extension.
func (t *Table) OtherExtensions(r *Resolved) []string {
	exts := t.byMediaType[MediaType{Media: r.Media, Type: r.Type}]
	others := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext != r.Extension {
			others = append(others, ext)
		}
	}
	return others
}

// IsExperimental reports whether the type component carries the "x-" prefix
func (r *Resolved) IsExperimental() bool {
	return strings.HasPrefix(r.Type, "x-")
}

// IsVendor reports whether the type component carries the "vnd." prefix
func (r *Resolved) IsVendor() bool {
	return strings.HasPrefix(r.Type, "vnd.")
}

// IsText reports whether the resolved media component is "text"
func (r *Resolved) IsText() bool {
	return r.Media == "text"
}

// IsImage reports whether the resolved media component is "image"
func (r *Resolved) IsImage() bool {
	return r.Media == "image"
}

// IsAudio reports whether the resolved media component is "audio"
func (r *Resolved) IsAudio() bool {
	return r.Media == "audio"
}

// IsVideo reports whether the resolved media component is "video"
func (r *Resolved) IsVideo() bool {
	return r.Media == "video"
}
