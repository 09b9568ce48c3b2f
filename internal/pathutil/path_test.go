package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain", "a/b/c.txt", "a/b/c.txt", true},
		{"trailing slash", "a/b/", "a/b", true},
		{"double slash", "a//b", "a/b", true},
		{"dot segment", "a/./b", "a/b", true},
		{"backslashes", `a\b\c.txt`, "a/b/c.txt", true},
		{"traversal", "../../etc/passwd", "", false},
		{"embedded traversal", "a/../../b", "", false},
		{"absolute", "/etc/passwd", "", false},
		{"empty", "", "", false},
		{"only dots", "./.", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Sanitize(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitBaseDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, Split("a/b/c"))
	assert.Equal(t, "c", Base("a/b/c"))
	assert.Equal(t, "a/b", Dir("a/b/c"))
	assert.Equal(t, "top", Base("top"))
	assert.Equal(t, "", Dir("top"))
}
