package arc

import (
	"fmt"
	"strings"

	"github.com/arclab/arc/internal/pathutil"
)

// FormatExtension returns the canonical file extension for a format id,
// including the leading dot. Unknown ids return "".
func FormatExtension(id string) string {
	f, ok := Find(id)
	if !ok || len(f.Extensions) == 0 {
		return ""
	}
	return f.Extensions[0]
}

// FormatForExtension resolves a filename to a format descriptor by its
// extension. Matching is case-insensitive and longest-suffix-wins, so
// "src.tar.gz" resolves to tar.gz rather than gz. ok is false when no
// registered extension matches.
func FormatForExtension(filename string) (FormatDescriptor, bool) {
	lower := strings.ToLower(pathutil.Base(filename))
	var (
		best    FormatDescriptor
		bestLen int
		found   bool
	)
	for _, f := range formats {
		for _, ext := range f.Extensions {
			if strings.HasSuffix(lower, ext) && len(ext) > bestLen {
				best, bestLen, found = f, len(ext), true
			}
		}
	}
	return best, found
}

// StripFormatExtension removes a format's recognized extension from
// filename, for naming the file recovered from a single-stream archive.
// If no extension of the format matches, filename is returned unchanged.
func StripFormatExtension(filename string, f FormatDescriptor) string {
	base := pathutil.Base(filename)
	lower := strings.ToLower(base)
	for _, ext := range f.Extensions {
		if strings.HasSuffix(lower, ext) && len(base) > len(ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// sizeUnits are the suffixes for FormatSize, in 1024 steps.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count as a human-readable string ("1.5 MB").
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", n, sizeUnits[0])
	}
	return fmt.Sprintf("%.1f %s", v, sizeUnits[i])
}
