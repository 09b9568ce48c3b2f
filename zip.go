package arc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/flate"
	kzip "github.com/klauspost/compress/zip"
	yekazip "github.com/yeka/zip"
)

// compressZip writes a zip archive: one local header per selected file
// with its tree path as the entry name, directory entries for selected
// empty directories, and the central directory on close.
//
// With a password set, every entry is encrypted with WinZip AES-256. The
// plain path registers a deflate compressor at the configured level;
// level 0 switches entries to the store method.
func compressZip(ctx context.Context, files, dirs []*FileNode, cfg *compressConfig) ([]byte, error) {
	if cfg.password != "" {
		return compressZipEncrypted(ctx, files, dirs, cfg)
	}

	var buf bytes.Buffer
	zw := kzip.NewWriter(&buf)

	method := uint16(kzip.Deflate)
	if cfg.level == 0 {
		method = kzip.Store
	} else {
		level := cfg.level
		zw.RegisterCompressor(kzip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(out, level)
		})
	}
	now := time.Now()

	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hdr := &kzip.FileHeader{Name: d.Path + "/", Method: kzip.Store, Modified: now}
		if _, err := zw.CreateHeader(hdr); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, d.Path, err)
		}
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hdr := &kzip.FileHeader{Name: f.Path, Method: method, Modified: now}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, f.Path, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, f.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize zip: %v", ErrCompressionFailed, err)
	}
	return buf.Bytes(), nil
}

func compressZipEncrypted(ctx context.Context, files, dirs []*FileNode, cfg *compressConfig) ([]byte, error) {
	var buf bytes.Buffer
	zw := yekazip.NewWriter(&buf)
	now := time.Now()

	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Directory entries carry no content, so they stay unencrypted.
		hdr := &yekazip.FileHeader{Name: d.Path + "/", Method: yekazip.Store}
		hdr.SetModTime(now)
		if _, err := zw.CreateHeader(hdr); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, d.Path, err)
		}
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w, err := zw.Encrypt(f.Path, cfg.password, yekazip.AES256Encryption)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, f.Path, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrCompressionFailed, f.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize zip: %v", ErrCompressionFailed, err)
	}
	return buf.Bytes(), nil
}

// decompressZip enumerates zip entries and rebuilds the file tree. The
// yeka reader handles both plain archives and AES/ZipCrypto encryption.
// Entries with unsupported method ids are skipped with a warning; an
// encrypted entry without a password is fatal so the caller can re-prompt.
func decompressZip(ctx context.Context, data []byte, cfg *decompressConfig) ([]*FileNode, []Warning, error) {
	zr, err := yekazip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: zip: %v", ErrCorruptArchive, err)
	}

	b := newTreeBuilder(cfg.logger)
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		name := f.Name
		if f.FileInfo().IsDir() {
			b.dir(name)
			continue
		}

		if f.IsEncrypted() {
			if cfg.password == "" {
				return nil, nil, fmt.Errorf("%w: zip entry %q", ErrPasswordRequired, name)
			}
			f.SetPassword(cfg.password)
		}

		rc, err := f.Open()
		if err != nil {
			if f.IsEncrypted() {
				return nil, nil, fmt.Errorf("%w: zip entry %q", ErrIncorrectPassword, name)
			}
			if errors.Is(err, yekazip.ErrAlgorithm) {
				b.skip(name, "unsupported compression method")
				continue
			}
			return nil, nil, fmt.Errorf("%w: zip entry %q: %v", ErrCorruptArchive, name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			// AES authentication and ZipCrypto checks surface on read.
			if f.IsEncrypted() {
				return nil, nil, fmt.Errorf("%w: zip entry %q", ErrIncorrectPassword, name)
			}
			return nil, nil, fmt.Errorf("%w: zip entry %q: %v", ErrCorruptArchive, name, err)
		}
		b.file(name, content)
	}
	return b.roots, b.warnings, nil
}
