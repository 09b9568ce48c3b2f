package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".zip", FormatExtension("zip"))
	assert.Equal(t, ".tar.gz", FormatExtension("tar.gz"))
	assert.Equal(t, "", FormatExtension("arj"))
}

func TestFormatForExtension(t *testing.T) {
	t.Parallel()

	t.Run("longest suffix wins", func(t *testing.T) {
		t.Parallel()
		f, ok := FormatForExtension("src.tar.gz")
		require.True(t, ok)
		assert.Equal(t, "tar.gz", f.ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()
		f, ok := FormatForExtension("BACKUP.ZIP")
		require.True(t, ok)
		assert.Equal(t, "zip", f.ID)
	})

	t.Run("alias extension", func(t *testing.T) {
		t.Parallel()
		f, ok := FormatForExtension("src.tgz")
		require.True(t, ok)
		assert.Equal(t, "tar.gz", f.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, ok := FormatForExtension("notes.txt")
		assert.False(t, ok)
	})
}

func TestStripFormatExtension(t *testing.T) {
	t.Parallel()

	gz, _ := Find("gz")
	assert.Equal(t, "main.go", StripFormatExtension("main.go.gz", gz))
	assert.Equal(t, "main.go", StripFormatExtension("dir/main.go.gz", gz))
	assert.Equal(t, "upload.bin", StripFormatExtension("upload.bin", gz))
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.0 KB", FormatSize(1024))
	assert.Equal(t, "1.5 MB", FormatSize(3*512*1024))
	assert.Equal(t, "2.0 GB", FormatSize(2<<30))
}
