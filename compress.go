package arc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// CompressResult is the outcome of a successful compress operation.
type CompressResult struct {
	// Data is the complete archive, materialized in memory.
	Data []byte

	// Warnings records non-fatal conditions: ignored passwords, files
	// dropped by the single-file policy.
	Warnings []Warning
}

// Compress encodes the selected files of tree into an archive of the given
// format. Selection drives the input set: only files with Selected=true
// are included, in stable pre-order; a selected directory with no selected
// descendants contributes an empty directory entry in formats that support
// them.
//
// Formats with SupportsMultipleFiles=false take exactly the first selected
// file; the rest are dropped with a warning the caller must surface.
//
// Either a complete archive is returned or an error; there is no partial
// output. The context is checked between entries for cancellation.
func Compress(ctx context.Context, tree []*FileNode, formatID string, opts ...CompressOption) (*CompressResult, error) {
	cfg := compressConfig{
		level:  DefaultLevel,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	format, ok := Find(formatID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown format %q", ErrUnsupportedOperation, formatID)
	}
	if !format.SupportsCompression {
		return nil, fmt.Errorf("%w: %s is extraction-only", ErrUnsupportedOperation, format.ID)
	}

	var warnings []Warning
	if cfg.password != "" && !format.SupportsPassword {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("password not supported for %s; archive will not be encrypted", format.ID),
		})
		cfg.logger.Warn("ignoring password", "format", format.ID)
		cfg.password = ""
	}

	files := Flatten(tree, true)
	dirs := SelectedDirectories(tree)

	if !format.SupportsMultipleFiles {
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: %s requires exactly one file", ErrEmptyInput, format.ID)
		}
		if len(files) > 1 {
			warnings = append(warnings, Warning{
				Path:    files[0].Path,
				Message: fmt.Sprintf("%s holds a single file; included 1 of %d selected", format.ID, len(files)),
			})
			cfg.logger.Warn("single-file format, dropping extra files",
				"format", format.ID, "kept", files[0].Path, "dropped", len(files)-1)
			files = files[:1]
		}
	}

	data, err := dispatchCompress(ctx, format, files, dirs, &cfg)
	if err != nil {
		return nil, err
	}
	return &CompressResult{Data: data, Warnings: warnings}, nil
}

// dispatchCompress routes to the per-format strategy. The format id is the
// tag; strategies are a closed set, one per registry entry with
// SupportsCompression set.
func dispatchCompress(ctx context.Context, format FormatDescriptor, files, dirs []*FileNode, cfg *compressConfig) ([]byte, error) {
	switch format.ID {
	case "zip":
		return compressZip(ctx, files, dirs, cfg)
	case "tar":
		return compressTar(ctx, files, dirs, cfg, "")
	case "tar.gz":
		return compressTar(ctx, files, dirs, cfg, "gz")
	case "tar.bz2":
		return compressTar(ctx, files, dirs, cfg, "bz2")
	case "tar.xz":
		return compressTar(ctx, files, dirs, cfg, "xz")
	case "tar.zst":
		return compressTar(ctx, files, dirs, cfg, "zst")
	case "tar.lz4":
		return compressTar(ctx, files, dirs, cfg, "lz4")
	case "gz", "bz2", "xz", "zst", "lz4", "br":
		return compressStream(ctx, format.ID, files[0], cfg)
	default:
		return nil, fmt.Errorf("%w: no compressor for %s", ErrUnsupportedOperation, format.ID)
	}
}
