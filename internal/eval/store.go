package eval

import "github.com/beakerlang/beakerc/internal/ast"

// frame is one activation's bindings, keyed by declaration identity
// rather than spelling: overload resolution has already turned every
// name reference into a DeclExpr pointing at a concrete *ast.Decl, so
// there is no need (and no opportunity for accidental shadowing bugs)
// to re-resolve by string here.
type frame struct {
	cells map[ast.Decl]*Cell
}

// Stack is the runtime analogue of scope.Stack: a stack of activation
// frames, one pushed by Run for module variables and one per function
// call, each popped on exit; blocks push no frame. Grounded on
// beaker/evaluator.hpp's Store_stack, with Store_sentinel's RAII
// replaced by an Enter/leave-closure pair.
type Stack struct {
	frames []*frame
}

// NewStack creates a runtime stack holding one empty base frame.
func NewStack() *Stack {
	return &Stack{frames: []*frame{{cells: map[ast.Decl]*Cell{}}}}
}

// Enter pushes a fresh frame and returns a function that pops it.
func (s *Stack) Enter() (leave func()) {
	s.frames = append(s.frames, &frame{cells: map[ast.Decl]*Cell{}})
	return func() { s.frames = s.frames[:len(s.frames)-1] }
}

// Bind creates a new cell holding v for d in the innermost frame.
func (s *Stack) Bind(d ast.Decl, v Value) *Cell {
	cell := &Cell{V: v}
	s.frames[len(s.frames)-1].cells[d] = cell
	return cell
}

// Alias binds d directly to an existing cell, so writes through either
// name are visible to the other (used for reference parameters and
// reference-init).
func (s *Stack) Alias(d ast.Decl, cell *Cell) {
	s.frames[len(s.frames)-1].cells[d] = cell
}

// Lookup finds d's cell, searching from the innermost frame outward to
// the base frame (there is no lexical nesting of runtime
// frames beyond call frames: a function body's blocks share its call
// frame, matching beaker's single Store per Function_decl invocation).
func (s *Stack) Lookup(d ast.Decl) (*Cell, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if c, ok := s.frames[i].cells[d]; ok {
			return c, true
		}
	}
	return nil, false
}
