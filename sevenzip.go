package arc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
)

// decompress7z extracts a 7z archive, including AES-256 encrypted ones.
// There is no 7z writer in the registry; the format is extraction-only.
func decompress7z(ctx context.Context, data []byte, cfg *decompressConfig) ([]*FileNode, []Warning, error) {
	zr, err := sevenzip.NewReaderWithPassword(bytes.NewReader(data), int64(len(data)), cfg.password)
	if err != nil {
		return nil, nil, classifyEncryptedErr("7z", err, cfg.password)
	}

	b := newTreeBuilder(cfg.logger)
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if f.FileInfo().IsDir() {
			b.dir(f.Name)
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, nil, classifyEncryptedErr("7z entry "+f.Name, err, cfg.password)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, classifyEncryptedErr("7z entry "+f.Name, err, cfg.password)
		}
		b.file(f.Name, content)
	}
	return b.roots, b.warnings, nil
}

// classifyEncryptedErr maps codec errors from password-capable extractors
// onto the password taxonomy. The underlying libraries report key and
// checksum failures with format-specific errors, so classification falls
// back to message inspection: mentions of passwords or keys mean the
// archive is encrypted, and a checksum mismatch under a supplied password
// is how wrong keys usually surface. Anything else is plain corruption.
func classifyEncryptedErr(where string, err error, password string) error {
	msg := strings.ToLower(err.Error())
	encrypted := strings.Contains(msg, "password") || strings.Contains(msg, "encrypt") ||
		strings.Contains(msg, "decrypt") || strings.Contains(msg, "key")
	checksum := strings.Contains(msg, "checksum") || strings.Contains(msg, "crc")
	switch {
	case encrypted && password == "":
		return fmt.Errorf("%w: %s", ErrPasswordRequired, where)
	case encrypted || (password != "" && checksum):
		return fmt.Errorf("%w: %s", ErrIncorrectPassword, where)
	default:
		return fmt.Errorf("%w: %s: %v", ErrCorruptArchive, where, err)
	}
}
