package filekind_test

import (
	"testing"

	"github.com/beakerlang/beakerc/internal/filekind"
	"github.com/stretchr/testify/assert"
)

func TestOfByExtension(t *testing.T) {
	cases := map[string]filekind.Kind{
		"main.bkr":    filekind.Source,
		"main.ll":     filekind.IR,
		"main.bc":     filekind.Bitcode,
		"main.s":      filekind.Asm,
		"main.o":      filekind.Object,
		"main.a":      filekind.Archive,
		"libfoo.so":   filekind.Library,
		"libfoo.dylib": filekind.Library,
		"libfoo.dll":  filekind.Library,
		"main.out":    filekind.Program,
		"main.exe":    filekind.Program,
		"main":        filekind.Program,
		"main.xyz":    filekind.Unspecified,
	}
	for path, want := range cases {
		assert.Equal(t, want, filekind.Of(path), "path %q", path)
	}
}

func TestIsLinked(t *testing.T) {
	assert.True(t, filekind.IsLinked(filekind.Library))
	assert.True(t, filekind.IsLinked(filekind.Archive))
	assert.True(t, filekind.IsLinked(filekind.Program))
	assert.False(t, filekind.IsLinked(filekind.Object))
	assert.False(t, filekind.IsLinked(filekind.Source))
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "main.ll", filekind.WithExtension("main.bkr", ".ll"))
	assert.Equal(t, "main.o", filekind.WithExtension("main.s", ".o"))
	assert.Equal(t, "dir/main.o", filekind.WithExtension("dir/main.bkr", ".o"))
}
