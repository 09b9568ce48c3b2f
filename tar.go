package arc

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// compressTar writes files and empty directories as a tar stream, then
// pipes the whole stream through the named secondary codec in a single
// pass. codecID "" produces bare tar. Passwords never reach this family;
// Compress routes them to the warning path beforehand.
func compressTar(ctx context.Context, files, dirs []*FileNode, cfg *compressConfig, codecID string) ([]byte, error) {
	var buf bytes.Buffer

	var out io.Writer = &buf
	var wc io.WriteCloser
	if codecID != "" {
		var err error
		wc, err = streamCodecs[codecID].newWriter(&buf, cfg.level)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s encoder: %v", ErrCompressionFailed, codecID, err)
		}
		out = wc
	}

	tw := tar.NewWriter(out)
	now := time.Now()

	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hdr := &tar.Header{
			Typeflag: tar.TypeDir,
			Name:     d.Path + "/",
			Mode:     0o755,
			ModTime:  now,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, d.Path, err)
		}
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     f.Path,
			Size:     int64(len(f.Data)),
			Mode:     0o644,
			ModTime:  now,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, f.Path, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, f.Path, err)
		}
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize tar: %v", ErrCompressionFailed, err)
	}
	if wc != nil {
		if err := wc.Close(); err != nil {
			return nil, fmt.Errorf("%w: finalize %s: %v", ErrCompressionFailed, codecID, err)
		}
	}
	return buf.Bytes(), nil
}

// decompressTar reads a tar stream, unwrapping the named secondary codec
// first. Unsupported entry types (symlinks, devices) are skipped with a
// warning; header corruption is fatal.
func decompressTar(ctx context.Context, data []byte, cfg *decompressConfig, codecID string) ([]*FileNode, []Warning, error) {
	var in io.Reader = bytes.NewReader(data)
	if codecID != "" {
		rc, err := streamCodecs[codecID].newReader(in)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, codecID, err)
		}
		defer rc.Close()
		in = rc
	}

	b := newTreeBuilder(cfg.logger)
	tr := tar.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: tar: %v", ErrCorruptArchive, err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			b.dir(hdr.Name)
		case tar.TypeReg:
			content, err := io.ReadAll(tr)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: tar entry %q: %v", ErrCorruptArchive, hdr.Name, err)
			}
			b.file(hdr.Name, content)
		default:
			b.skip(hdr.Name, fmt.Sprintf("unsupported tar entry type %q", hdr.Typeflag))
		}
	}
	return b.roots, b.warnings, nil
}
