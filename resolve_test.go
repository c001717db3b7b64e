package mimekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	table := newTestTable(t)

	t.Run("plain name", func(t *testing.T) {
		r, err := table.Resolve("notes.txt")
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", r.Name)
		assert.Equal(t, "notes.txt", r.Base)
		assert.Equal(t, "txt", r.Extension)
		assert.Equal(t, "text/plain", r.MIME)
		assert.Equal(t, "text", r.Media)
		assert.Equal(t, "plain", r.Type)
	})

	t.Run("path name uses base segment", func(t *testing.T) {
		r, err := table.Resolve("/var/www/site/index.html")
		require.NoError(t, err)
		assert.Equal(t, "index.html", r.Base)
		assert.Equal(t, "html", r.Extension)
		assert.Equal(t, "text/html", r.MIME)
	})

	t.Run("only the final dot counts", func(t *testing.T) {
		r, err := table.Resolve("archive.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, "gz", r.Extension)
		assert.Equal(t, "application/gzip", r.MIME)
	})

	t.Run("no extension segment", func(t *testing.T) {
		_, err := table.Resolve("noext")
		require.Error(t, err)
		assert.True(t, IsExtensionNotFound(err))
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := table.Resolve("file.unknownext")
		require.Error(t, err)
		assert.True(t, IsMIMENotFound(err))
	})

	t.Run("lookup is case-exact", func(t *testing.T) {
		// Resolve does not normalize, MIMEByExtension does.
		_, err := table.Resolve("FILE.TXT")
		require.Error(t, err)
		assert.True(t, IsMIMENotFound(err))

		assert.Equal(t, "text/plain", table.MIMEByExtension("TXT"))
		assert.Equal(t, table.MIMEByExtension("txt"), table.MIMEByExtension("TXT"))
	})
}

func TestOtherExtensions(t *testing.T) {
	table := newTestTable(t)

	r, err := table.Resolve("a.text")
	require.NoError(t, err)

	others := table.OtherExtensions(r)
	assert.Equal(t, []string{"txt", "conf"}, others, "siblings in table order, self excluded")

	r, err = table.Resolve("a.png")
	require.NoError(t, err)
	assert.Empty(t, table.OtherExtensions(r))
}

func TestResolvedClassification(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name         string
		experimental bool
		vendor       bool
	}{
		{name: "main.go", experimental: true},
		{name: "report.xls", vendor: true},
		{name: "notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := table.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.experimental, r.IsExperimental())
			assert.Equal(t, tt.vendor, r.IsVendor())
		})
	}
}

func TestResolvedMediaClass(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name                       string
		text, image, audio, video bool
	}{
		{name: "notes.txt", text: true},
		{name: "photo.png", image: true},
		{name: "track.mp3", audio: true},
		{name: "clip.mp4", video: true},
		{name: "bundle.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := table.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.text, r.IsText())
			assert.Equal(t, tt.image, r.IsImage())
			assert.Equal(t, tt.audio, r.IsAudio())
			assert.Equal(t, tt.video, r.IsVideo())
		})
	}
}

// renamedStream reports a display name that differs from the base name it
// extracted, so a resolver preferring the Pathed capability is observable.
type renamedStream struct {
	name string
	base string
}

func (s renamedStream) Name() string { return s.name }
func (s renamedStream) Base() string { return s.base }

func TestResolveStream(t *testing.T) {
	table := newTestTable(t)

	t.Run("bare name source", func(t *testing.T) {
		r, err := table.ResolveStream(StreamName("logs/app.txt"))
		require.NoError(t, err)
		assert.Equal(t, "logs/app.txt", r.Name)
		assert.Equal(t, "app.txt", r.Base)
		assert.Equal(t, "text/plain", r.MIME)
	})

	t.Run("path-aware source", func(t *testing.T) {
		r, err := table.ResolveStream(NewPathStream("/srv/media/clip.mp4"))
		require.NoError(t, err)
		assert.Equal(t, "clip.mp4", r.Base)
		assert.Equal(t, "video/mp4", r.MIME)
	})

	t.Run("pathed base name wins over derived", func(t *testing.T) {
		src := renamedStream{name: "upload-19ab", base: "photo.png"}
		r, err := table.ResolveStream(src)
		require.NoError(t, err)
		assert.Equal(t, "upload-19ab", r.Name)
		assert.Equal(t, "photo.png", r.Base)
		assert.Equal(t, "image/png", r.MIME)
	})

	t.Run("named-only source with no extension", func(t *testing.T) {
		_, err := table.ResolveStream(StreamName("upload-19ab"))
		require.Error(t, err)
		assert.True(t, IsExtensionNotFound(err))
	})
}
