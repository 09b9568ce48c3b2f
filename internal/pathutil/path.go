// Package pathutil normalizes archive entry paths and rejects paths that
// would escape the extraction root.
package pathutil

import "strings"

// Sanitize converts an archive entry name to a normalized slash-separated
// path relative to the archive root.
//
// It performs the following transformations:
//   - Converts backslashes to slashes (archives written by Windows tools)
//   - Strips trailing slashes: "etc/nginx/" → "etc/nginx"
//   - Collapses consecutive slashes and "." segments: "a//./b" → "a/b"
//
// ok is false when the entry must be rejected: the path is absolute,
// empty after normalization, or any segment is "..".
func Sanitize(name string) (path string, ok bool) {
	name = strings.ReplaceAll(name, `\`, "/")
	if strings.HasPrefix(name, "/") {
		return "", false
	}

	parts := strings.Split(name, "/")
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			return "", false
		}
		segs = append(segs, part)
	}
	if len(segs) == 0 {
		return "", false
	}
	return strings.Join(segs, "/"), true
}

// Split returns the slash-separated segments of an already-sanitized path.
func Split(path string) []string {
	return strings.Split(path, "/")
}

// Base returns the final segment of an already-sanitized path.
func Base(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Dir returns the parent of an already-sanitized path, or "" at the root.
func Dir(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return ""
}
