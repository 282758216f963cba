package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmetrics/netmetrics/builder"
	"github.com/netmetrics/netmetrics/core"
	"github.com/netmetrics/netmetrics/spectral"
)

// TestKatz_Errors verifies nil-graph and option validation.
func TestKatz_Errors(t *testing.T) {
	_, err := spectral.Katz(nil)
	assert.ErrorIs(t, err, spectral.ErrNilGraph)

	g, err := builder.Cycle(3)
	require.NoError(t, err)

	_, err = spectral.Katz(g, spectral.WithAlpha(0))
	assert.ErrorIs(t, err, spectral.ErrOptionViolation)
	_, err = spectral.Katz(g, spectral.WithAlpha(-0.5))
	assert.ErrorIs(t, err, spectral.ErrOptionViolation)
}

// TestKatz_NoEdges: without in-arcs every node keeps exactly the baseline β.
func TestKatz_NoEdges(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	res, err := spectral.Katz(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations, "baseline is already the fixed point")
	for v, s := range res.Scores {
		assert.InDelta(t, spectral.DefaultBeta, s, 1e-12, "node %d", v)
	}
}

// TestKatz_PathExactValues: on a DAG the fixed point is reached exactly and
// scores grow downstream — each node adds α times its predecessor's score.
func TestKatz_PathExactValues(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)

	res, err := spectral.Katz(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)

	want := []float64{1.0, 1.1, 1.11, 1.111} // β=1, α=0.1
	for v := range want {
		assert.InDelta(t, want[v], res.Scores[v], 1e-9, "node %d", v)
	}
	for v := 1; v < 4; v++ {
		assert.Greater(t, res.Scores[v], res.Scores[v-1], "katz grows downstream")
	}
}

// TestKatz_CycleClosedForm: by symmetry every node of a cycle converges to
// β/(1−α).
func TestKatz_CycleClosedForm(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)

	res, err := spectral.Katz(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	want := spectral.DefaultBeta / (1 - spectral.DefaultAlpha)
	for v, s := range res.Scores {
		assert.InDelta(t, want, s, 1e-6, "node %d", v)
	}
}

// TestKatz_CustomBeta: β rescales the whole fixed point linearly.
func TestKatz_CustomBeta(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	res, err := spectral.Katz(g, spectral.WithBeta(2.0))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	want := 2.0 / (1 - spectral.DefaultAlpha)
	for v, s := range res.Scores {
		assert.InDelta(t, want, s, 1e-6, "node %d", v)
	}
}

// TestKatz_DivergenceFlagged: α above the reciprocal spectral radius makes
// the iteration diverge; that hits the cap and is flagged, not fatal.
func TestKatz_DivergenceFlagged(t *testing.T) {
	g, err := builder.Complete(4) // spectral radius 3
	require.NoError(t, err)

	res, err := spectral.Katz(g, spectral.WithAlpha(0.9), spectral.WithMaxIterations(50))
	require.NoError(t, err, "divergence is a quality concern, not an error")
	assert.False(t, res.Converged)
	assert.Equal(t, 50, res.Iterations)
	require.Len(t, res.Scores, 4)
}
