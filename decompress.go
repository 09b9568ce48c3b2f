package arc

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/arclab/arc/internal/pathutil"
)

// DecompressResult is the outcome of a successful decompress operation.
type DecompressResult struct {
	// Files is the reconstructed forest of file nodes.
	Files []*FileNode

	// Format is the id that was actually detected, which may differ from
	// the nominal extension of the uploaded filename.
	Format string

	// Warnings records non-fatal conditions: skipped entries, rejected
	// traversal paths.
	Warnings []Warning
}

// Decompress detects the format of data and extracts it into a file tree.
// Magic bytes take precedence over the filename extension.
//
// Encrypted archives fail with ErrPasswordRequired when no password was
// supplied and ErrIncorrectPassword when the supplied one fails, so the
// caller can re-prompt instead of aborting. Entries whose paths would
// escape the extraction root are rejected individually with a warning;
// the remaining entries are still returned.
func Decompress(ctx context.Context, data []byte, filename string, opts ...DecompressOption) (*DecompressResult, error) {
	cfg := decompressConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	format, err := Detect(data, filename)
	if err != nil {
		return nil, err
	}

	var warnings []Warning
	if cfg.password != "" && !format.SupportsPassword {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("password not supported for %s; ignored", format.ID),
		})
		cfg.logger.Warn("ignoring password", "format", format.ID)
		cfg.password = ""
	}

	var (
		files         []*FileNode
		codecWarnings []Warning
	)
	switch format.ID {
	case "zip":
		files, codecWarnings, err = decompressZip(ctx, data, &cfg)
	case "tar":
		files, codecWarnings, err = decompressTar(ctx, data, &cfg, "")
	case "tar.gz":
		files, codecWarnings, err = decompressTar(ctx, data, &cfg, "gz")
	case "tar.bz2":
		files, codecWarnings, err = decompressTar(ctx, data, &cfg, "bz2")
	case "tar.xz":
		files, codecWarnings, err = decompressTar(ctx, data, &cfg, "xz")
	case "tar.zst":
		files, codecWarnings, err = decompressTar(ctx, data, &cfg, "zst")
	case "tar.lz4":
		files, codecWarnings, err = decompressTar(ctx, data, &cfg, "lz4")
	case "gz", "bz2", "xz", "zst", "lz4", "br":
		files, err = decompressStream(ctx, format.ID, data, filename, format)
	case "7z":
		files, codecWarnings, err = decompress7z(ctx, data, &cfg)
	case "rar":
		files, codecWarnings, err = decompressRar(ctx, data, &cfg)
	default:
		err = fmt.Errorf("%w: no extractor for %s", ErrUnsupportedOperation, format.ID)
	}
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, codecWarnings...)
	return &DecompressResult{Files: files, Format: format.ID, Warnings: warnings}, nil
}

// treeBuilder rebuilds a file forest from archive entry paths. Directory
// nodes are memoized by path, so re-encountering "a/b" reuses the existing
// node instead of duplicating it. Entry names are sanitized on the way in;
// rejected names become warnings, never errors.
type treeBuilder struct {
	roots    []*FileNode
	dirs     map[string]*FileNode
	warnings []Warning
	logger   *slog.Logger
}

func newTreeBuilder(logger *slog.Logger) *treeBuilder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &treeBuilder{dirs: make(map[string]*FileNode), logger: logger}
}

// dir returns the directory node for an entry name, creating it and any
// missing ancestors. Returns nil for rejected names.
func (b *treeBuilder) dir(name string) *FileNode {
	path, ok := pathutil.Sanitize(name)
	if !ok {
		b.reject(name)
		return nil
	}
	return b.mkdir(path)
}

// file adds a file node for an entry name, creating parent directories on
// demand.
func (b *treeBuilder) file(name string, data []byte) {
	path, ok := pathutil.Sanitize(name)
	if !ok {
		b.reject(name)
		return
	}
	b.attach(pathutil.Dir(path), NewFileNode(path, data))
}

// insertFile places an existing node under its path's directory chain,
// preserving the node's data and flags. Used by BuildTreeFromPaths.
func (b *treeBuilder) insertFile(f *FileNode) {
	path, ok := pathutil.Sanitize(f.Path)
	if !ok {
		b.reject(f.Path)
		return
	}
	f.Path = path
	f.Name = pathutil.Base(path)
	b.attach(pathutil.Dir(path), f)
}

// skip records a non-fatal skipped entry.
func (b *treeBuilder) skip(name, reason string) {
	b.warnings = append(b.warnings, Warning{Path: name, Message: reason, Err: ErrUnsupportedEntry})
	b.logger.Warn("skipping entry", "path", name, "reason", reason)
}

func (b *treeBuilder) reject(name string) {
	b.warnings = append(b.warnings, Warning{Path: name, Message: "rejected unsafe path"})
	b.logger.Warn("rejecting unsafe entry path", "path", name)
}

// mkdir returns the memoized directory node for path, creating the whole
// ancestor chain as needed. Idempotent.
func (b *treeBuilder) mkdir(path string) *FileNode {
	if path == "" {
		return nil
	}
	if d, ok := b.dirs[path]; ok {
		return d
	}
	d := NewDirNode(path)
	d.Expanded = true
	b.dirs[path] = d
	b.attach(pathutil.Dir(path), d)
	return d
}

// attach appends n to the children of parentPath, or to the roots when
// parentPath is empty.
func (b *treeBuilder) attach(parentPath string, n *FileNode) {
	if parentPath == "" {
		b.roots = append(b.roots, n)
		return
	}
	parent := b.mkdir(parentPath)
	parent.Children = append(parent.Children, n)
}
