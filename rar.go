package arc

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/nwaples/rardecode"
)

// decompressRar extracts a RAR archive, including password-protected ones.
// RAR is extraction-only: the format's compression schemes are proprietary
// and no writer exists.
func decompressRar(ctx context.Context, data []byte, cfg *decompressConfig) ([]*FileNode, []Warning, error) {
	rr, err := rardecode.NewReader(bytes.NewReader(data), cfg.password)
	if err != nil {
		return nil, nil, classifyEncryptedErr("rar", err, cfg.password)
	}

	b := newTreeBuilder(cfg.logger)
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, classifyEncryptedErr("rar", err, cfg.password)
		}
		if hdr.IsDir {
			b.dir(hdr.Name)
			continue
		}
		content, err := io.ReadAll(rr)
		if err != nil {
			return nil, nil, classifyEncryptedErr("rar entry "+hdr.Name, err, cfg.password)
		}
		b.file(hdr.Name, content)
	}
	return b.roots, b.warnings, nil
}
