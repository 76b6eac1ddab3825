package ast

import (
	"fmt"
	"io"
)

// Dump writes a human-readable rendering of decl to w, one declaration
// per line with nested declarations indented. The translate subcommand
// uses it to print every translated module. Grounded on beaker/print.cpp's
// declaration printer; reimplemented here as a plain recursive function
// rather than a visitor, matching this package's type-switch dispatch
// convention throughout.
func Dump(w io.Writer, d Decl) {
	dump(w, d, 0)
}

func dump(w io.Writer, d Decl, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch d := d.(type) {
	case *ModuleDecl:
		fmt.Fprintf(w, "%smodule\n", indent)
		for _, child := range d.Decls {
			dump(w, child, depth+1)
		}
	case *RecordDecl:
		fmt.Fprintf(w, "%srecord %s\n", indent, d.Name().Spelling())
		for _, f := range d.Fields {
			fmt.Fprintf(w, "%s  field %s: %s\n", indent, f.Name().Spelling(), f.TypeExpr)
		}
		for _, m := range d.Methods {
			dump(w, m, depth+1)
		}
	case *FunctionDecl:
		fmt.Fprintf(w, "%sfunction %s -> %s\n", indent, d.Name().Spelling(), d.ReturnTypeExpr)
	case *MethodDecl:
		fmt.Fprintf(w, "%smethod %s -> %s\n", indent, d.Name().Spelling(), d.ReturnTypeExpr)
	case *VariableDecl:
		fmt.Fprintf(w, "%svar %s: %s\n", indent, d.Name().Spelling(), d.TypeExpr)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, d.String())
	}
}
