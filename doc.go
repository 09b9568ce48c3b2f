// Package arc compresses in-memory file trees into archives and extracts
// archives back into navigable file trees, across a heterogeneous set of
// container and compression formats (zip, the tar family, bare gzip/zstd/
// xz/lz4/brotli/bzip2 streams, 7z and rar extraction).
//
// Every operation is gated by a static capability matrix: each
// [FormatDescriptor] declares whether the format supports compression,
// decompression, multiple files, and password protection. Unknown or
// incapable formats fail loudly instead of being silently mishandled.
//
// # Quick Start
//
// Compress a tree of selected files:
//
//	res, err := arc.Compress(ctx, tree, "tar.gz", arc.CompressWithLevel(9))
//	if err != nil {
//	    return err
//	}
//	// res.Data holds the complete archive.
//
// Extract an uploaded archive, letting magic bytes decide the format:
//
//	out, err := arc.Decompress(ctx, data, "upload.zip")
//	if errors.Is(err, arc.ErrPasswordRequired) {
//	    // re-prompt and retry with arc.DecompressWithPassword(pw)
//	}
//
// # Errors and warnings
//
// Operations return one terminal error or succeed completely; there is no
// partial output. Recoverable per-entry conditions (unsupported methods,
// rejected traversal paths, ignored passwords) are returned as [Warning]
// values alongside the result. [ErrPasswordRequired] and
// [ErrIncorrectPassword] are distinguished so callers can re-prompt
// instead of aborting a batch.
//
// All I/O is in-memory byte buffers; persistence and transport belong to
// the caller.
package arc
