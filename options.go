package mimekit

import "io"

// Option represents a table construction option
type Option func(*Options)

// Options contains all possible options for table construction
type Options struct {
	// Magic is the path to an alternate magic table on disk
	Magic string

	// Source supplies raw magic table text directly, taking precedence
	// over Magic and the bundled table
	Source io.Reader

	// Checksum is the expected xxhash digest of the table source
	Checksum string
}

// WithMagic points the builder at an alternate magic table on disk
func WithMagic(path string) Option {
	return func(o *Options) {
		o.Magic = path
	}
}

// WithSource builds the table from raw magic table text instead of a file
func WithSource(r io.Reader) Option {
	return func(o *Options) {
		o.Source = r
	}
}

// WithChecksum verifies the table source against an expected xxhash digest
// before parsing
func WithChecksum(digest string) Option {
	return func(o *Options) {
		o.Checksum = digest
	}
}
