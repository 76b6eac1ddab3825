// Package filekind classifies paths by extension into the kinds the
// driver dispatches on, grounded on beaker/file.hpp's File_kind enum.
package filekind

import (
	"path/filepath"
	"strings"
)

// Kind is one of the file kinds a pipeline stage reads or writes.
type Kind int

const (
	// Unspecified is any extension not recognized below.
	Unspecified Kind = iota
	// Source is the language's own source text (.bkr).
	Source
	// IR is the intermediate textual artifact (.ll).
	IR
	// Bitcode is the intermediate binary artifact (.bc).
	Bitcode
	// Asm is native assembly source text (.s).
	Asm
	// Object is a native object file (.o).
	Object
	// Archive is a static library (.a).
	Archive
	// Library is a dynamic library (.so/.dylib/.dll).
	Library
	// Program is a linked executable, unmarked or .out/.exe.
	Program
)

var names = map[Kind]string{
	Unspecified: "unspecified", Source: "source", IR: "ir", Bitcode: "bitcode",
	Asm: "asm", Object: "object", Archive: "archive", Library: "library",
	Program: "program",
}

func (k Kind) String() string { return names[k] }

var byExtension = map[string]Kind{
	".bkr":   Source,
	".ll":    IR,
	".bc":    Bitcode,
	".s":     Asm,
	".o":     Object,
	".a":     Archive,
	".so":    Library,
	".dylib": Library,
	".dll":   Library,
	".out":   Program,
	".exe":   Program,
}

// Of classifies path by its extension. A path with no extension at all
// is a Program, matching the toolchain's convention of leaving linked
// executables unmarked on Unix.
func Of(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Program
	}
	if k, ok := byExtension[ext]; ok {
		return k
	}
	return Unspecified
}

// IsLinked reports whether k is the product of a link step.
func IsLinked(k Kind) bool {
	switch k {
	case Library, Archive, Program:
		return true
	default:
		return false
	}
}

// WithExtension returns path with its extension replaced by ext (which
// must include the leading '.'), mirroring beaker/file.hpp's
// to_ir_file/to_asm_file/to_object_file helpers for moving a path
// between pipeline stages.
func WithExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
