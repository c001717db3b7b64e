package mimekit

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// SourceDigest reads raw magic table text and returns its hex-encoded xxhash
// digest. The digest feeds the MagicChecksum config knob and is cheap enough
// to use as a cache key.
func SourceDigest(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to digest magic table: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Fingerprint digests the parsed entries in table order. Unlike SourceDigest
// it is stable across comment and whitespace edits to the source text, so two
// tables with the same entries share a fingerprint.
func (t *Table) Fingerprint() string {
	h := xxhash.New()
	for _, mt := range t.order {
		_, _ = io.WriteString(h, mt.String())
		for _, ext := range t.byMediaType[mt] {
			_, _ = io.WriteString(h, " "+ext)
		}
		_, _ = io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}
