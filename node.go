package arc

import (
	"github.com/google/uuid"

	"github.com/arclab/arc/internal/pathutil"
)

// NodeType distinguishes file and directory nodes.
type NodeType string

const (
	NodeFile NodeType = "file"
	NodeDir  NodeType = "directory"
)

// FileNode is one node of the in-memory file tree handed to Compress and
// produced by Decompress. Trees are created transiently per operation;
// nodes are never shared between trees (each child has exactly one parent).
type FileNode struct {
	// ID is a process-local unique identifier. Not persisted.
	ID string

	// Name is the leaf name only, with no path separators.
	Name string

	// Type is NodeFile or NodeDir.
	Type NodeType

	// Path is the full slash-separated path from the tree root.
	Path string

	// Size is the byte length of Data. Zero for directories.
	Size int64

	// Data is the file content. Directories never carry data.
	Data []byte

	// Children holds child nodes, directories only.
	Children []*FileNode

	// Selected and Expanded are UI flags. Selection drives which files a
	// compress operation includes, so both survive codec round trips.
	Selected bool
	Expanded bool
}

// NewFileNode returns a file node owning data. The node starts selected.
func NewFileNode(path string, data []byte) *FileNode {
	return &FileNode{
		ID:       uuid.NewString(),
		Name:     pathutil.Base(path),
		Type:     NodeFile,
		Path:     path,
		Size:     int64(len(data)),
		Data:     data,
		Selected: true,
	}
}

// NewDirNode returns an empty directory node. The node starts selected.
func NewDirNode(path string) *FileNode {
	return &FileNode{
		ID:       uuid.NewString(),
		Name:     pathutil.Base(path),
		Type:     NodeDir,
		Path:     path,
		Selected: true,
	}
}

// Flatten returns the files of tree in stable pre-order. Directories are
// structural and never appear in the result. With onlySelected set, only
// files with Selected=true are returned.
func Flatten(tree []*FileNode, onlySelected bool) []*FileNode {
	var out []*FileNode
	for _, n := range tree {
		switch n.Type {
		case NodeFile:
			if !onlySelected || n.Selected {
				out = append(out, n)
			}
		case NodeDir:
			out = append(out, Flatten(n.Children, onlySelected)...)
		}
	}
	return out
}

// ToggleAllSelection returns a copy of tree with every node's Selected set
// to selected. Input nodes are not mutated; file data buffers are shared.
func ToggleAllSelection(tree []*FileNode, selected bool) []*FileNode {
	out := make([]*FileNode, len(tree))
	for i, n := range tree {
		c := *n
		c.Selected = selected
		if n.Type == NodeDir {
			c.Children = ToggleAllSelection(n.Children, selected)
		}
		out[i] = &c
	}
	return out
}

// CountSelectedFiles returns the number of selected files in tree.
func CountSelectedFiles(tree []*FileNode) int {
	return len(Flatten(tree, true))
}

// CountTotalFiles returns the number of files in tree.
func CountTotalFiles(tree []*FileNode) int {
	return len(Flatten(tree, false))
}

// TotalSize returns the combined byte size of all files in tree.
func TotalSize(tree []*FileNode) int64 {
	var total int64
	for _, f := range Flatten(tree, false) {
		total += f.Size
	}
	return total
}

// SelectedDirectories returns the selected directories of tree, pre-order,
// that contain no selected files. Container formats with explicit directory
// entries (zip, tar) record these as empty directories. Nested directories
// are reported individually, parents before children, so a/ and a/b/ each
// get their own entry.
func SelectedDirectories(tree []*FileNode) []*FileNode {
	var out []*FileNode
	for _, n := range tree {
		if n.Type != NodeDir {
			continue
		}
		if n.Selected && CountSelectedFiles(n.Children) == 0 {
			out = append(out, n)
		}
		out = append(out, SelectedDirectories(n.Children)...)
	}
	return out
}

// BuildTreeFromPaths groups flat file nodes into a forest by shared path
// prefixes, the inverse of Flatten. Directory nodes are created at most
// once per path; re-encountering a directory reuses the existing node.
func BuildTreeFromPaths(files []*FileNode) []*FileNode {
	b := newTreeBuilder(nil)
	for _, f := range files {
		b.insertFile(f)
	}
	return b.roots
}
