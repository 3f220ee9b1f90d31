package brent_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlroot/brent"
)

// countingFunc wraps f and records every abscissa it is evaluated at.
func countingFunc(f brent.Func, seen map[float64]int) brent.Func {
	return func(x float64) (float64, error) {
		seen[x]++

		return f(x)
	}
}

// TestFindBracket_SeedAtRoot verifies that a seed already within tolerance
// yields a degenerate bracket after exactly one evaluation.
func TestFindBracket_SeedAtRoot(t *testing.T) {
	seen := map[float64]int{}
	f := countingFunc(func(x float64) (float64, error) { return math.Exp(x) - 1, nil }, seen)

	br, err := brent.FindBracket(f, 0, brent.DefaultOptions())
	require.NoError(t, err, "seed at the root must not error")
	assert.True(t, br.Degenerate(), "seed at the root must collapse the bracket")
	assert.Equal(t, 0.0, br.A, "degenerate bracket must sit on the seed")
	assert.Equal(t, 0.0, br.FA, "cached value must be the exact hit")
	assert.Len(t, seen, 1, "only the seed itself may be evaluated")
	assert.Equal(t, 1, seen[0.0], "the seed must be evaluated exactly once")
}

// TestFindBracket_SignChangeRight checks that rightward expansion traps the
// root of exp(x)−10 and preserves the sign-change invariant.
func TestFindBracket_SignChangeRight(t *testing.T) {
	f := func(x float64) (float64, error) { return math.Exp(x) - 10, nil }

	br, err := brent.FindBracket(f, 0, brent.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, br.Degenerate(), "a genuine interval is expected")
	assert.True(t, br.FA == 0 || br.FB == 0 || (br.FA > 0) != (br.FB > 0),
		"bracket endpoints must have values of opposite sign")
	assert.LessOrEqual(t, br.A, math.Log(10), "bracket must contain ln(10)")
	assert.GreaterOrEqual(t, br.B, math.Log(10), "bracket must contain ln(10)")
}

// TestFindBracket_LeftwardExpansion checks that a root left of the seed is
// reachable: ln(x)+2 from seed 1 has its root at exp(−2) ≈ 0.1353.
func TestFindBracket_LeftwardExpansion(t *testing.T) {
	f := func(x float64) (float64, error) { return math.Log(x) + 2, nil }

	br, err := brent.FindBracket(f, 1, brent.DefaultOptions())
	require.NoError(t, err)
	root := math.Exp(-2)
	assert.LessOrEqual(t, br.A, root, "bracket must contain exp(-2)")
	assert.GreaterOrEqual(t, br.B, root, "bracket must contain exp(-2)")
}

// TestFindBracket_NotFound verifies that a function with no sign change in
// reach exhausts the expansion budget with ErrBracketNotFound.
func TestFindBracket_NotFound(t *testing.T) {
	f := func(x float64) (float64, error) { return x*x + 1, nil }

	_, err := brent.FindBracket(f, 0, brent.DefaultOptions())
	assert.ErrorIs(t, err, brent.ErrBracketNotFound, "everywhere-positive function must exhaust the search")
}

// TestFindBracket_EvalFault verifies that a function returning an error
// surfaces as an EvalError carrying the offending abscissa.
func TestFindBracket_EvalFault(t *testing.T) {
	boom := errors.New("backend unavailable")
	f := func(x float64) (float64, error) { return 0, boom }

	_, err := brent.FindBracket(f, 3, brent.DefaultOptions())
	assert.ErrorIs(t, err, brent.ErrEvaluation, "fault must map to the evaluation sentinel")
	assert.ErrorIs(t, err, boom, "the underlying cause must stay reachable")

	var ev *brent.EvalError
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, 3.0, ev.X, "the failing abscissa is the seed itself")
}

// TestFindBracket_NonFinite verifies that NaN results are first-class errors,
// not values: ErrEvaluation and ErrNonFinite both match.
func TestFindBracket_NonFinite(t *testing.T) {
	f := func(x float64) (float64, error) { return math.NaN(), nil }

	_, err := brent.FindBracket(f, 0, brent.DefaultOptions())
	assert.ErrorIs(t, err, brent.ErrEvaluation)
	assert.ErrorIs(t, err, brent.ErrNonFinite)

	var ev *brent.EvalError
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, 0.0, ev.X, "the very first evaluation (the seed) must fail")
}

// TestFindBracket_NoReevaluation verifies the evaluation discipline: no
// abscissa is ever computed twice during expansion.
func TestFindBracket_NoReevaluation(t *testing.T) {
	seen := map[float64]int{}
	f := countingFunc(func(x float64) (float64, error) { return math.Exp(x) - 10, nil }, seen)

	_, err := brent.FindBracket(f, 0, brent.DefaultOptions())
	require.NoError(t, err)
	for x, n := range seen {
		assert.Equal(t, 1, n, "point %g was evaluated %d times", x, n)
	}
}

// TestFindBracket_Validation walks the configuration sentinels.
func TestFindBracket_Validation(t *testing.T) {
	f := func(x float64) (float64, error) { return x, nil }

	_, err := brent.FindBracket(nil, 0, brent.DefaultOptions())
	assert.ErrorIs(t, err, brent.ErrNilFunc)

	opts := brent.DefaultOptions()
	opts.Tol = 0
	_, err = brent.FindBracket(f, 0, opts)
	assert.ErrorIs(t, err, brent.ErrInvalidTolerance)

	opts = brent.DefaultOptions()
	opts.MaxExpand = 0
	_, err = brent.FindBracket(f, 0, opts)
	assert.ErrorIs(t, err, brent.ErrBadIterationCap)

	opts = brent.DefaultOptions()
	opts.Step = 0
	_, err = brent.FindBracket(f, 0, opts)
	assert.ErrorIs(t, err, brent.ErrBadStep)

	opts = brent.DefaultOptions()
	opts.Grow = 1
	_, err = brent.FindBracket(f, 0, opts)
	assert.ErrorIs(t, err, brent.ErrBadStep)
}
