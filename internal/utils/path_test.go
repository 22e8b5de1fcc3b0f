package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPathFrom(t *testing.T) {
	base := filepath.FromSlash("/work/project")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"base itself", base, "."},
		{"child", filepath.Join(base, "out", "a.txt"), "." + string(filepath.Separator) + filepath.Join("out", "a.txt")},
		{"sibling with shared prefix", filepath.FromSlash("/work/project-old/a.txt"), filepath.FromSlash("/work/project-old/a.txt")},
		{"outside", filepath.FromSlash("/tmp/x"), filepath.FromSlash("/tmp/x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayPathFrom(base, tt.path))
		})
	}
}

func TestDisplayPathFrom_EmptyBase(t *testing.T) {
	assert.Equal(t, "/a/b", DisplayPathFrom("", "/a/b"))
}
