package arc

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// streamCodec binds a single-stream compression format to its encoder and
// decoder constructors. The same codecs compress bare files and wrap the
// tar strategies (tar.gz, tar.zst, ...).
type streamCodec struct {
	newWriter func(w io.Writer, level int) (io.WriteCloser, error)
	newReader func(r io.Reader) (io.ReadCloser, error)
}

var streamCodecs = map[string]streamCodec{
	"gz": {
		newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
			// gzip level 0 emits stored deflate blocks, the codec's
			// native "store" mode.
			return gzip.NewWriterLevel(w, level)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
	},
	"bz2": {
		newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
			// bzip2 has no store mode; clamp to its cheapest level.
			if level < bzip2.BestSpeed {
				level = bzip2.BestSpeed
			}
			return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return bzip2.NewReader(r, nil)
		},
	},
	"xz": {
		newWriter: func(w io.Writer, _ int) (io.WriteCloser, error) {
			// ulikunitz/xz exposes no numeric preset; the default
			// configuration serves every level.
			return xz.NewWriter(w)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(xr), nil
		},
	},
	"zst": {
		newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
			return zstd.NewWriter(w,
				zstd.WithEncoderLevel(zstdEncoderLevel(level)),
				zstd.WithEncoderConcurrency(1),
			)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	},
	"lz4": {
		newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
			zw := lz4.NewWriter(w)
			if err := zw.Apply(lz4.CompressionLevelOption(lz4Level(level))); err != nil {
				return nil, err
			}
			return zw, nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
	},
	"br": {
		newWriter: func(w io.Writer, level int) (io.WriteCloser, error) {
			return brotli.NewWriterLevel(w, level), nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(brotli.NewReader(r)), nil
		},
	},
}

// zstdEncoderLevel buckets the 0-9 scale onto zstd's four encoder levels.
func zstdEncoderLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 2:
		return zstd.SpeedFastest
	case level <= 5:
		return zstd.SpeedDefault
	case level <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

// lz4Level maps the 0-9 scale onto lz4 compression levels. Zero selects
// the fast path.
func lz4Level(level int) lz4.CompressionLevel {
	switch level {
	case 0:
		return lz4.Fast
	case 1:
		return lz4.Level1
	case 2:
		return lz4.Level2
	case 3:
		return lz4.Level3
	case 4:
		return lz4.Level4
	case 5:
		return lz4.Level5
	case 6:
		return lz4.Level6
	case 7:
		return lz4.Level7
	case 8:
		return lz4.Level8
	default:
		return lz4.Level9
	}
}

// compressStream encodes a single file as a bare compressed stream. The
// archive is the compressed file; there is no container metadata.
func compressStream(ctx context.Context, codecID string, file *FileNode, cfg *compressConfig) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	codec := streamCodecs[codecID]

	var buf bytes.Buffer
	w, err := codec.newWriter(&buf, cfg.level)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s encoder: %v", ErrCompressionFailed, codecID, err)
	}
	if _, err := w.Write(file.Data); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, file.Path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, file.Path, err)
	}
	return buf.Bytes(), nil
}

// decompressStream decodes a bare compressed stream into a single file
// node named after the archive filename with the format extension removed.
func decompressStream(ctx context.Context, codecID string, data []byte, filename string, format FormatDescriptor) ([]*FileNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	codec := streamCodecs[codecID]

	r, err := codec.newReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, format.ID, err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, format.ID, err)
	}
	name := StripFormatExtension(filename, format)
	if name == "" {
		name = "file"
	}
	return []*FileNode{NewFileNode(name, content)}, nil
}
