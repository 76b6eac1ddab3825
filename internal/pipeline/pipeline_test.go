package pipeline_test

import (
	"testing"

	"github.com/beakerlang/beakerc/internal/eval"
	"github.com/beakerlang/beakerc/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The seven worked end-to-end scenarios of the language's data model,
// each taken straight from source text to a runtime result or error.

func TestCompileArithmeticPrecedence(t *testing.T) {
	v, err := pipeline.Compile("t.bkr", `def main() -> int { return 1 + 2 * 3; }`)
	require.NoError(t, err)
	assert.Equal(t, eval.Int(7), v)
}

func TestCompileRecursiveFactorial(t *testing.T) {
	src := `def fact(n: int) -> int { if (n == 0) return 1; else return n * fact(n - 1); }
def main() -> int { return fact(5); }`
	v, err := pipeline.Compile("t.bkr", src)
	require.NoError(t, err)
	assert.Equal(t, eval.Int(120), v)
}

func TestCompileWhileLoop(t *testing.T) {
	src := `def main() -> int { var x: int = 0; while (x < 10) x = x + 1; return x; }`
	v, err := pipeline.Compile("t.bkr", src)
	require.NoError(t, err)
	assert.Equal(t, eval.Int(10), v)
}

func TestCompileDivisionByZero(t *testing.T) {
	v, err := pipeline.Compile("t.bkr", `def main() -> int { return 1 / 0; }`)
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestCompileReturnTypeMismatchIsATypeError(t *testing.T) {
	_, err := pipeline.Translate("t.bkr", `def f(x: int) -> bool { return x; }`)
	assert.Error(t, err)
}

func TestCompileOverloadVaryingOnlyByReturnTypeIsRejected(t *testing.T) {
	_, err := pipeline.Translate("t.bkr", `def f() -> int {} def f() -> bool {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return type")
}

func TestCompileBaseFieldReadThroughDerivedReference(t *testing.T) {
	src := `
record Base { x: int; }
record Derived : Base { y: int; }
def read(r: ref Base) -> int { return r.x; }
def main() -> int {
	var d: Derived;
	d.x = 11;
	d.y = 31;
	return read(d) + d.y;
}`
	v, err := pipeline.Compile("t.bkr", src)
	require.NoError(t, err)
	assert.Equal(t, eval.Int(42), v)
}

func TestCompileRemainderIsNotDivision(t *testing.T) {
	v, err := pipeline.Compile("t.bkr", `def main() -> int { return 7 % 3; }`)
	require.NoError(t, err)
	assert.Equal(t, eval.Int(1), v)
}

func TestCompileShortCircuitAndNeverEvaluatesRight(t *testing.T) {
	// 1 / 0 would fail if evaluated; short-circuit must skip it.
	src := `def main() -> int { if (false && (1 / 0 == 0)) return 0; else return 5; }`
	v, err := pipeline.Compile("t.bkr", src)
	require.NoError(t, err)
	assert.Equal(t, eval.Int(5), v)
}

func TestCompileNoEntryPointIsAnError(t *testing.T) {
	_, err := pipeline.Compile("t.bkr", `def notMain() -> int { return 0; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry point")
}

func TestTranslateSyntaxErrorIsReported(t *testing.T) {
	_, err := pipeline.Translate("t.bkr", `def main() -> int { return 1 + ; }`)
	assert.Error(t, err)
}
