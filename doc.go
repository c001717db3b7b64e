// Package mimekit resolves associations between file-name extensions and
// MIME media/type pairs, using a line-oriented text table (the "magic" table)
// as its source of truth. It answers both directions: which MIME belongs to a
// file name or extension, and which extensions share a MIME.
//
// There is no content sniffing here. Resolution is purely name-based, which
// makes it deterministic, allocation-light, and safe to run over untrusted
// input.
//
// # Magic Table
//
// The table is UTF-8 text, one entry per line. Blank lines and lines starting
// with "#" are ignored. Every other line is a MEDIA/TYPE pair, optionally
// followed by a run of tabs and a space-separated list of extensions:
//
//	text/plain		txt text pot brf srt
//	application/pgp-keys	key
//	multipart/form-data
//
// Entries without extensions register the media/type pair only. When two
// lines claim the same extension, the later line wins.
//
// A table ships bundled with the package, and an alternate one can be
// supplied via configuration or options. Malformed lines fail the build with
// a [ParseError] carrying the line number and the surrounding lines.
//
// # Basic Usage
//
//	table, err := mimekit.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Resolve a file name
//	r, err := table.Resolve("report.pdf")
//	fmt.Println(r.MIME)  // application/pdf
//	fmt.Println(r.Media) // application
//
//	// Look up an extension without failing on absence
//	mime := table.MIMEByExtension("TXT") // "text/plain", case-insensitive
//
//	// Enumerate extensions for a MIME
//	exts, err := table.ExtensionsByMIME("image/jpeg") // [jpeg jpg jpe]
//
// Resolve and MIMEByExtension are deliberately asymmetric: Resolve fails hard
// on an unknown extension and looks the extension up exactly as written,
// while MIMEByExtension lowercases its argument and signals absence with an
// empty string.
//
// # Alternate Tables
//
// Point the builder at another table with options:
//
//	table, err := mimekit.New(mimekit.WithMagic("/etc/mime.types"))
//
// or through the environment (see [Config]):
//
//	BEAVER_MIMEKIT_MAGIC=/etc/mime.types
//	BEAVER_MIMEKIT_MAGIC_CHECKSUM=<xxhash digest>
//
// The optional checksum is verified against the raw table text before
// parsing.
//
// # Shared Table
//
// A process-wide table is available through [Default] and the package-level
// query functions. It is built lazily on first use, guarded by a sync.Once,
// and never rebuilt unless [Reset] is called:
//
//	r, err := mimekit.Resolve("archive.tar.gz")
//	fmt.Println(r.Extension) // "gz"
//
// # Stream Sources
//
// Callers that hand over stream-like values instead of plain names implement
// [Named], or additionally [Pathed] when they already know their base name:
//
//	r, err := table.ResolveStream(mimekit.StreamName("logs/app.json"))
//
// # Classification
//
// A [Resolved] value classifies itself from its components: IsExperimental
// reports an "x-" type, IsVendor a "vnd." type, and IsText, IsImage, IsAudio
// and IsVideo test the media component.
package mimekit
