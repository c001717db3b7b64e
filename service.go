package mimekit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultTable *Table
	defaultOnce  sync.Once
	defaultErr   error
)

// Builder provides a way to create Table instances with a custom env prefix
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Table instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Table instance using the builder's prefix
func (b *Builder) New() (*Table, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// Init initializes the global table instance. The build runs at most once;
// later calls return the first outcome.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultTable, defaultErr = NewFromConfig(cfg)
	})

	return defaultErr
}

// New builds a Table according to the given options. Without options the
// bundled magic table is used.
func New(opts ...Option) (*Table, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	raw, err := readSource(options)
	if err != nil {
		return nil, err
	}

	if options.Checksum != "" {
		digest, err := SourceDigest(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		if digest != options.Checksum {
			return nil, fmt.Errorf("%w: want %s, have %s", ErrChecksumMismatch, options.Checksum, digest)
		}
	}

	return parseTable(raw)
}

// readSource picks the table source by precedence: explicit reader, alternate
// path, bundled table.
func readSource(options *Options) ([]byte, error) {
	if options.Source != nil {
		raw, err := io.ReadAll(options.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		return raw, nil
	}

	if options.Magic != "" {
		raw, err := os.ReadFile(options.Magic)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, options.Magic, err)
		}
		return raw, nil
	}

	return embeddedTable, nil
}

// NewFromConfig builds a Table from a loaded Config
func NewFromConfig(cfg *Config) (*Table, error) {
	var opts []Option
	if cfg.MagicPath != "" {
		opts = append(opts, WithMagic(cfg.MagicPath))
	}
	if cfg.MagicChecksum != "" {
		opts = append(opts, WithChecksum(cfg.MagicChecksum))
	}
	return New(opts...)
}

// NewFromEnv creates an instance from environment variables (convenience constructor)
func NewFromEnv() (*Table, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// Lookup returns the global table instance, building it on first use.
// Returns nil when the build fails; use Default for error handling.
func Lookup() *Table {
	if defaultTable == nil {
		_ = Init()
	}
	return defaultTable
}

// Default returns the global instance, initializing if needed with error handling
func Default() (*Table, error) {
	if defaultTable == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultTable, nil
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultTable = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Resolve resolves name against the shared table, building it on first use
func Resolve(name string) (*Resolved, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	return t.Resolve(name)
}

// ResolveStream resolves a named source against the shared table
func ResolveStream(src Named) (*Resolved, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	return t.ResolveStream(src)
}

// ExtensionExists reports whether ext has an entry in the shared table
func ExtensionExists(ext string) bool {
	t, err := Default()
	if err != nil {
		return false
	}
	return t.ExtensionExists(ext)
}

// MIMEByExtension looks up ext in the shared table, ignoring case. The empty
// string means no entry or a failed table build.
func MIMEByExtension(ext string) string {
	t, err := Default()
	if err != nil {
		return ""
	}
	return t.MIMEByExtension(ext)
}

// ExtensionsByMIME returns the shared table's extensions for a MIME string
func ExtensionsByMIME(mime string) ([]string, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	return t.ExtensionsByMIME(mime)
}
