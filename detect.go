package arc

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// magicTable maps leading byte signatures to format ids. Order matters:
// earlier entries win, and longer signatures precede shorter ones.
var magicTable = []struct {
	prefix []byte
	id     string
}{
	{[]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}, "7z"},
	{[]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, "xz"},
	{[]byte("Rar!\x1a\x07"), "rar"}, // covers RAR4 and RAR5 signatures
	{[]byte{0x50, 0x4b, 0x03, 0x04}, "zip"},
	{[]byte{0x50, 0x4b, 0x05, 0x06}, "zip"}, // empty archive, bare end record
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, "zst"},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, "lz4"},
	{[]byte("BZh"), "bz2"},
	{[]byte{0x1f, 0x8b}, "gz"},
}

// tarWrapped maps a single-stream codec id to its tar-container variant,
// used when the decompressed payload turns out to be a tar archive.
var tarWrapped = map[string]string{
	"gz":  "tar.gz",
	"bz2": "tar.bz2",
	"xz":  "tar.xz",
	"zst": "tar.zst",
	"lz4": "tar.lz4",
}

// Detect determines the format of data. Magic bytes take precedence over
// the filename extension; the extension breaks ties only when sniffing is
// inconclusive (bare tar headers, brotli's magic-free stream). Detection
// never guesses: unidentifiable input fails with ErrUnrecognizedFormat.
func Detect(data []byte, filename string) (FormatDescriptor, error) {
	for _, m := range magicTable {
		if !bytes.HasPrefix(data, m.prefix) {
			continue
		}
		id := m.id
		if wrapped, ok := tarWrapped[id]; ok && looksLikeTar(decodePrefix(id, data)) {
			id = wrapped
		}
		f, _ := Find(id)
		return f, nil
	}

	// Tar has no magic at offset 0; trial-parse the first header block.
	if looksLikeTar(data) {
		f, _ := Find("tar")
		return f, nil
	}

	if f, ok := FormatForExtension(filename); ok && f.SupportsDecompression {
		return f, nil
	}
	return FormatDescriptor{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, filename)
}

// decodePrefix decompresses up to the first kilobyte of a single-stream
// archive for content sniffing. Best effort: any decode failure yields an
// empty prefix and the caller falls through to the bare-stream format.
func decodePrefix(codecID string, data []byte) []byte {
	codec := streamCodecs[codecID]
	rc, err := codec.newReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer rc.Close()

	buf := make([]byte, 1024)
	n, err := io.ReadFull(rc, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil
	}
	return buf[:n]
}

// looksLikeTar reports whether b begins with a plausible tar archive: a
// header block carrying the ustar magic or a validating checksum, or the
// all-zero end-of-archive marker of an empty archive.
func looksLikeTar(b []byte) bool {
	if len(b) < 512 {
		return false
	}
	block := b[:512]
	if isZeroBlock(block) {
		// An empty tar archive opens with its end-of-archive marker.
		return len(b) >= 1024 && isZeroBlock(b[512:1024])
	}
	if string(block[257:262]) == "ustar" {
		return true
	}
	return validTarChecksum(block)
}

func isZeroBlock(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// validTarChecksum recomputes the header checksum over block with the
// checksum field blanked, accepting both the unsigned sum mandated by
// POSIX and the signed sum some historic tars wrote.
func validTarChecksum(block []byte) bool {
	field := strings.Trim(string(block[148:156]), " \x00")
	want, err := strconv.ParseInt(field, 8, 64)
	if err != nil {
		return false
	}
	var unsigned, signed int64
	for i, c := range block {
		if i >= 148 && i < 156 {
			c = ' '
		}
		unsigned += int64(c)
		signed += int64(int8(c))
	}
	return want == unsigned || want == signed
}
