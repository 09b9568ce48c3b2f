package arc

// FormatDescriptor describes one supported archive or compression format
// and the operations it supports. Descriptors are immutable; the registry
// is fixed at package initialization and never mutated.
type FormatDescriptor struct {
	// ID is the stable key codec dispatch switches on (e.g. "zip", "tar.gz").
	ID string

	// Name and Description are display strings for the caller's UI.
	Name        string
	Description string

	// Extensions lists recognized file extensions, most canonical first.
	Extensions []string

	// Capability matrix. A format with SupportsMultipleFiles=false must
	// still decompress multi-entry archives produced by other tools.
	SupportsCompression   bool
	SupportsDecompression bool
	SupportsMultipleFiles bool
	SupportsPassword      bool
}

// formats is the registry. Order is the order presented to callers.
var formats = []FormatDescriptor{
	{
		ID:                    "zip",
		Name:                  "ZIP",
		Description:           "Deflate-based container, AES-256 encryption on write",
		Extensions:            []string{".zip"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
		SupportsPassword:      true,
	},
	{
		ID:                    "tar",
		Name:                  "TAR",
		Description:           "POSIX tape archive, uncompressed",
		Extensions:            []string{".tar"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
	},
	{
		ID:                    "tar.gz",
		Name:                  "TAR.GZ",
		Description:           "Tar archive compressed with gzip",
		Extensions:            []string{".tar.gz", ".tgz"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
	},
	{
		ID:                    "tar.bz2",
		Name:                  "TAR.BZ2",
		Description:           "Tar archive compressed with bzip2",
		Extensions:            []string{".tar.bz2", ".tbz2"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
	},
	{
		ID:                    "tar.xz",
		Name:                  "TAR.XZ",
		Description:           "Tar archive compressed with xz",
		Extensions:            []string{".tar.xz", ".txz"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
	},
	{
		ID:                    "tar.zst",
		Name:                  "TAR.ZST",
		Description:           "Tar archive compressed with zstandard",
		Extensions:            []string{".tar.zst", ".tzst"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
	},
	{
		ID:                    "tar.lz4",
		Name:                  "TAR.LZ4",
		Description:           "Tar archive compressed with lz4",
		Extensions:            []string{".tar.lz4"},
		SupportsCompression:   true,
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
	},
	{
		ID:                    "gz",
		Name:                  "GZIP",
		Description:           "Single-file gzip stream",
		Extensions:            []string{".gz"},
		SupportsCompression:   true,
		SupportsDecompression: true,
	},
	{
		ID:                    "bz2",
		Name:                  "BZIP2",
		Description:           "Single-file bzip2 stream",
		Extensions:            []string{".bz2"},
		SupportsCompression:   true,
		SupportsDecompression: true,
	},
	{
		ID:                    "xz",
		Name:                  "XZ",
		Description:           "Single-file xz stream",
		Extensions:            []string{".xz"},
		SupportsCompression:   true,
		SupportsDecompression: true,
	},
	{
		ID:                    "zst",
		Name:                  "ZSTD",
		Description:           "Single-file zstandard stream",
		Extensions:            []string{".zst"},
		SupportsCompression:   true,
		SupportsDecompression: true,
	},
	{
		ID:                    "lz4",
		Name:                  "LZ4",
		Description:           "Single-file lz4 frame",
		Extensions:            []string{".lz4"},
		SupportsCompression:   true,
		SupportsDecompression: true,
	},
	{
		ID:                    "br",
		Name:                  "Brotli",
		Description:           "Single-file brotli stream",
		Extensions:            []string{".br"},
		SupportsCompression:   true,
		SupportsDecompression: true,
	},
	{
		ID:                    "7z",
		Name:                  "7-Zip",
		Description:           "7z container, extraction only (AES-256 supported)",
		Extensions:            []string{".7z"},
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
		SupportsPassword:      true,
	},
	{
		ID:                    "rar",
		Name:                  "RAR",
		Description:           "RAR container, extraction only",
		Extensions:            []string{".rar"},
		SupportsDecompression: true,
		SupportsMultipleFiles: true,
		SupportsPassword:      true,
	},
}

// Formats returns every registered format descriptor.
//
// The returned slice is a copy; mutating it does not affect the registry.
func Formats() []FormatDescriptor {
	out := make([]FormatDescriptor, len(formats))
	copy(out, formats)
	return out
}

// Find returns the descriptor for id. ok is false for unknown ids.
func Find(id string) (FormatDescriptor, bool) {
	for _, f := range formats {
		if f.ID == id {
			return f, true
		}
	}
	return FormatDescriptor{}, false
}

// FilterByCapability returns the formats for which pred returns true,
// preserving registry order.
func FilterByCapability(pred func(FormatDescriptor) bool) []FormatDescriptor {
	var out []FormatDescriptor
	for _, f := range formats {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

// CompressionFormats returns the formats valid as compression targets.
func CompressionFormats() []FormatDescriptor {
	return FilterByCapability(func(f FormatDescriptor) bool {
		return f.SupportsCompression
	})
}

// ExtractionOnlyFormats returns formats that can only be decompressed.
func ExtractionOnlyFormats() []FormatDescriptor {
	return FilterByCapability(func(f FormatDescriptor) bool {
		return f.SupportsDecompression && !f.SupportsCompression
	})
}
