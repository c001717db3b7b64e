package mimekit

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// Bundled magic table, used when no alternate path is configured.
//
//go:embed mime.types
var embeddedTable []byte

// MediaType is a MIME string split into its media and type components.
type MediaType struct {
	Media string
	Type  string
}

// String reassembles the media/type pair into a MIME string.
func (mt MediaType) String() string {
	return mt.Media + "/" + mt.Type
}

// ParseMediaType splits a raw MIME string on its first "/".
// A string without a separator is malformed.
func ParseMediaType(raw string) (MediaType, error) {
	media, typ, ok := strings.Cut(raw, "/")
	if !ok {
		return MediaType{}, fmt.Errorf("%w: %q has no media/type separator", ErrMalformedMIME, raw)
	}
	return MediaType{Media: media, Type: typ}, nil
}

// Table is the bidirectional index built from a magic table. It maps each
// media/type pair to its ordered extension list and each extension back to
// its MIME string. A Table never changes after construction and is safe for
// concurrent readers.
type Table struct {
	byMediaType map[MediaType][]string
	byExtension map[string]string
	order       []MediaType
}

// Parse builds a Table from raw magic table text. Blank lines and #-comment
// lines contribute nothing; every other line is MEDIA/TYPE optionally
// followed by a tab run and a space-separated extension list. Later lines
// overwrite earlier ones for the same extension.
func Parse(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return parseTable(raw)
}

// Load reads and parses a magic table from disk
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	return parseTable(raw)
}

// Embedded builds a Table from the bundled magic table
func Embedded() (*Table, error) {
	return parseTable(embeddedTable)
}

func parseTable(raw []byte) (*Table, error) {
	t := &Table{
		byMediaType: make(map[MediaType][]string),
		byExtension: make(map[string]string),
	}

	// Kept as a whole slice rather than scanned incrementally so a parse
	// failure can report the lines surrounding it.
	lines := strings.Split(string(raw), "\n")

	for i, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		mime, exts := splitEntry(entry)
		mt, err := ParseMediaType(mime)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Window: contextWindow(lines, i), Err: err}
		}

		if _, seen := t.byMediaType[mt]; !seen {
			t.order = append(t.order, mt)
		}

		if exts == "" {
			// MIME known, no extension mapped
			t.byMediaType[mt] = nil
			continue
		}

		tokens := splitExtensions(exts)
		t.byMediaType[mt] = tokens
		for _, ext := range tokens {
			t.byExtension[ext] = mt.String()
		}
	}

	return t, nil
}

// splitEntry splits a data line on its first run of tabs into the MIME field
// and the optional extensions field. Hand-edited tables sometimes pad the
// MIME field with spaces before the tab; those are not part of the type.
func splitEntry(entry string) (mime, exts string) {
	i := strings.IndexByte(entry, '\t')
	if i < 0 {
		return entry, ""
	}
	return strings.TrimRight(entry[:i], " "), strings.TrimLeft(entry[i:], "\t")
}

// splitExtensions splits the extensions field on single spaces, dropping
// empty tokens from stray padding.
func splitExtensions(exts string) []string {
	parts := strings.Split(exts, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// contextWindow renders up to three lines either side of the failing line,
// marking the failure itself.
func contextWindow(lines []string, at int) []string {
	lo := at - 3
	if lo < 0 {
		lo = 0
	}
	hi := at + 3
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}

	window := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		mark := "   "
		if i == at {
			mark = " > "
		}
		window = append(window, fmt.Sprintf("%s%4d | %s", mark, i+1, lines[i]))
	}
	return window
}

// Len returns the number of media/type entries in the table
func (t *Table) Len() int {
	return len(t.order)
}

// ExtensionExists reports whether ext has a table entry. The test is exact;
// see MIMEByExtension for the case-insensitive lookup.
func (t *Table) ExtensionExists(ext string) bool {
	_, ok := t.byExtension[ext]
	return ok
}

// MIMEByExtension returns the MIME string registered for ext, ignoring case.
// The empty string means no entry; callers needing a hard failure should use
// Resolve instead.
func (t *Table) MIMEByExtension(ext string) string {
	return t.byExtension[strings.ToLower(ext)]
}

// ExtensionsByMIME returns the extensions registered for a MIME string in
// table order. The list is empty when the table knows the MIME but maps no
// extensions to it.
func (t *Table) ExtensionsByMIME(mime string) ([]string, error) {
	mt, err := ParseMediaType(mime)
	if err != nil {
		return nil, err
	}
	exts, ok := t.byMediaType[mt]
	if !ok {
		return nil, fmt.Errorf("%w: no entry for %s", ErrMIMENotFound, mt)
	}
	return exts, nil
}

// MediaTypes returns every media/type pair in table order
func (t *Table) MediaTypes() []MediaType {
	out := make([]MediaType, len(t.order))
	copy(out, t.order)
	return out
}
