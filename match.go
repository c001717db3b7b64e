package mimekit

import (
	"fmt"

	"github.com/gobwas/glob"
)

// MatchExtensions returns the extensions whose names match the glob pattern,
// in table order. Extensions shared by several entries appear once.
//
// Example:
//
//	exts, err := table.MatchExtensions("doc*")
func (t *Table) MatchExtensions(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid extension pattern %q: %w", pattern, err)
	}

	var matched []string
	seen := make(map[string]struct{})
	for _, mt := range t.order {
		for _, ext := range t.byMediaType[mt] {
			if !g.Match(ext) {
				continue
			}
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			matched = append(matched, ext)
		}
	}
	return matched, nil
}

// MatchMIMEs returns the MIME strings matching the glob pattern, in table
// order. The "/" separator is respected, so "image/*" matches image/png but
// not a nested wildcard.
//
// Example:
//
//	mimes, err := table.MatchMIMEs("application/vnd.*")
func (t *Table) MatchMIMEs(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid mime pattern %q: %w", pattern, err)
	}

	var matched []string
	for _, mt := range t.order {
		if g.Match(mt.String()) {
			matched = append(matched, mt.String())
		}
	}
	return matched, nil
}
