package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds a small forest:
//
//	docs/
//	  readme.md
//	  img/
//	    logo.png
//	main.go
func sampleTree(tb testing.TB) []*FileNode {
	tb.Helper()
	tree := BuildTreeFromPaths([]*FileNode{
		NewFileNode("docs/readme.md", []byte("# readme")),
		NewFileNode("docs/img/logo.png", []byte{0x89, 'P', 'N', 'G'}),
		NewFileNode("main.go", []byte("package main\n")),
	})
	require.Len(tb, tree, 2)
	return tree
}

func paths(nodes []*FileNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Path
	}
	return out
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	tree := sampleTree(t)

	t.Run("pre-order, files only", func(t *testing.T) {
		t.Parallel()
		got := Flatten(tree, false)
		assert.Equal(t, []string{"docs/readme.md", "docs/img/logo.png", "main.go"}, paths(got))
	})

	t.Run("only selected", func(t *testing.T) {
		t.Parallel()
		tree := sampleTree(t)
		Flatten(tree, false)[1].Selected = false
		got := Flatten(tree, true)
		assert.Equal(t, []string{"docs/readme.md", "main.go"}, paths(got))
	})
}

func TestToggleAllSelection(t *testing.T) {
	t.Parallel()

	tree := sampleTree(t)
	toggled := ToggleAllSelection(tree, false)

	assert.Zero(t, CountSelectedFiles(toggled))
	assert.Equal(t, 3, CountSelectedFiles(tree), "input tree was mutated")

	reselected := ToggleAllSelection(toggled, true)
	assert.Equal(t, 3, CountSelectedFiles(reselected))
	for _, d := range reselected {
		assert.True(t, d.Selected, "selection must cascade to %q", d.Path)
	}
}

func TestCountsAndSize(t *testing.T) {
	t.Parallel()

	tree := sampleTree(t)
	assert.Equal(t, 3, CountTotalFiles(tree))
	assert.Equal(t, 3, CountSelectedFiles(tree))
	assert.Equal(t, int64(len("# readme")+4+len("package main\n")), TotalSize(tree))
}

func TestBuildTreeFromPaths(t *testing.T) {
	t.Parallel()

	t.Run("shared prefixes create one directory node", func(t *testing.T) {
		t.Parallel()
		tree := BuildTreeFromPaths([]*FileNode{
			NewFileNode("a/b/x.txt", []byte("x")),
			NewFileNode("a/b/y.txt", []byte("y")),
		})
		require.Len(t, tree, 1)
		a := tree[0]
		assert.Equal(t, NodeDir, a.Type)
		require.Len(t, a.Children, 1)
		b := a.Children[0]
		assert.Equal(t, "a/b", b.Path)
		assert.Equal(t, []string{"a/b/x.txt", "a/b/y.txt"}, paths(b.Children))
	})

	t.Run("inverse of flatten", func(t *testing.T) {
		t.Parallel()
		tree := sampleTree(t)
		rebuilt := BuildTreeFromPaths(Flatten(tree, false))
		assert.Equal(t, paths(Flatten(tree, false)), paths(Flatten(rebuilt, false)))
	})
}

func TestSelectedDirectories(t *testing.T) {
	t.Parallel()

	t.Run("directories with selected files are structural", func(t *testing.T) {
		t.Parallel()
		empty := NewDirNode("empty")
		tree := append(sampleTree(t), empty)

		got := SelectedDirectories(tree)
		assert.Equal(t, []string{"empty"}, paths(got))

		empty.Selected = false
		assert.Empty(t, SelectedDirectories(tree))
	})

	t.Run("nested empty directories are each reported", func(t *testing.T) {
		t.Parallel()
		inner := NewDirNode("a/b")
		outer := NewDirNode("a")
		outer.Children = []*FileNode{inner}

		got := SelectedDirectories([]*FileNode{outer})
		assert.Equal(t, []string{"a", "a/b"}, paths(got),
			"parents precede children so archives write a/ before a/b/")
	})
}
