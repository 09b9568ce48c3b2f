package arc

import (
	"bytes"
	"context"
	"testing"

	kzip "github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zipOf builds a zip archive from name → content pairs, in order.
func zipOf(tb testing.TB, entries map[string]string, order []string) []byte {
	tb.Helper()
	var buf bytes.Buffer
	zw := kzip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		require.NoError(tb, err)
		_, err = w.Write([]byte(entries[name]))
		require.NoError(tb, err)
	}
	require.NoError(tb, zw.Close())
	return buf.Bytes()
}

func TestDecompressZipTraversalRejected(t *testing.T) {
	t.Parallel()

	data := zipOf(t, map[string]string{
		"../../etc/passwd": "root:x:0:0",
		"/abs/owned.txt":   "nope",
		"safe.txt":         "fine",
	}, []string{"../../etc/passwd", "/abs/owned.txt", "safe.txt"})

	out, err := Decompress(context.Background(), data, "evil.zip")
	require.NoError(t, err, "bad entries are rejected individually, not fatally")

	assert.Equal(t, map[string]string{"safe.txt": "fine"}, fileContents(out.Files))
	require.Len(t, out.Warnings, 2)
	assert.Equal(t, "../../etc/passwd", out.Warnings[0].Path)
	assert.Equal(t, "/abs/owned.txt", out.Warnings[1].Path)
}

func TestDecompressZipIdempotentDirectories(t *testing.T) {
	t.Parallel()

	data := zipOf(t, map[string]string{
		"a/b/x.txt": "x",
		"a/b/y.txt": "y",
	}, []string{"a/b/x.txt", "a/b/y.txt"})

	out, err := Decompress(context.Background(), data, "nested.zip")
	require.NoError(t, err)

	require.Len(t, out.Files, 1, "exactly one root directory node")
	a := out.Files[0]
	assert.Equal(t, "a", a.Path)
	require.Len(t, a.Children, 1, "exactly one a/b node")
	b := a.Children[0]
	assert.Equal(t, "a/b", b.Path)
	assert.Equal(t, []string{"a/b/x.txt", "a/b/y.txt"}, paths(b.Children))
}

func TestDecompressZipExplicitDirectoryEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := kzip.NewWriter(&buf)
	_, err := zw.CreateHeader(&kzip.FileHeader{Name: "logs/", Method: kzip.Store})
	require.NoError(t, err)
	w, err := zw.Create("logs/app.log")
	require.NoError(t, err)
	_, err = w.Write([]byte("started"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, err := Decompress(context.Background(), buf.Bytes(), "logs.zip")
	require.NoError(t, err)

	require.Len(t, out.Files, 1, "explicit and implicit logs/ must be the same node")
	logs := out.Files[0]
	assert.Equal(t, NodeDir, logs.Type)
	assert.Equal(t, []string{"logs/app.log"}, paths(logs.Children))
}

func TestCompressZipEmptyDirectoryEntry(t *testing.T) {
	t.Parallel()

	tree := []*FileNode{
		NewFileNode("readme.md", []byte("hello")),
		NewDirNode("assets"),
	}
	res, err := Compress(context.Background(), tree, "zip")
	require.NoError(t, err)

	out, err := Decompress(context.Background(), res.Data, "out.zip")
	require.NoError(t, err)

	var sawDir bool
	for _, n := range out.Files {
		if n.Type == NodeDir && n.Path == "assets" {
			sawDir = true
			assert.Empty(t, n.Children)
		}
	}
	assert.True(t, sawDir, "selected empty directory must survive the round trip")
}

func TestDecompressZipCorrupt(t *testing.T) {
	t.Parallel()

	data := zipOf(t, map[string]string{"a.txt": "a"}, []string{"a.txt"})
	// Truncating after the local header leaves the central directory
	// unreadable.
	_, err := Decompress(context.Background(), data[:20], "broken.zip")
	assert.ErrorIs(t, err, ErrCorruptArchive)
}
