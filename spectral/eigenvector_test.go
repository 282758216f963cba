package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmetrics/netmetrics/builder"
	"github.com/netmetrics/netmetrics/core"
	"github.com/netmetrics/netmetrics/spectral"
)

// TestEigenvector_Errors verifies nil-graph and option validation.
func TestEigenvector_Errors(t *testing.T) {
	_, err := spectral.Eigenvector(nil)
	assert.ErrorIs(t, err, spectral.ErrNilGraph)

	g, err := builder.Cycle(3)
	require.NoError(t, err)

	_, err = spectral.Eigenvector(g, spectral.WithTolerance(-1))
	assert.ErrorIs(t, err, spectral.ErrOptionViolation)
	_, err = spectral.Eigenvector(g, spectral.WithMaxIterations(0))
	assert.ErrorIs(t, err, spectral.ErrOptionViolation)
}

// TestEigenvector_NoEdges: the zero vector is the explicit fallback, not a
// division-by-zero crash.
func TestEigenvector_NoEdges(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	res, err := spectral.Eigenvector(g)
	require.NoError(t, err)
	require.Len(t, res.Scores, 4)
	assert.True(t, res.Converged)
	for v, s := range res.Scores {
		assert.Zero(t, s, "node %d", v)
		assert.False(t, math.IsNaN(s))
	}
}

// TestEigenvector_DAGCollapses: a nilpotent adjacency (any DAG) collapses
// to the zero vector after at most N multiplies.
func TestEigenvector_DAGCollapses(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)

	res, err := spectral.Eigenvector(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	for v, s := range res.Scores {
		assert.Zero(t, s, "node %d", v)
	}
}

// TestEigenvector_Cycle: the uniform vector is the dominant eigenvector of
// a directed cycle.
func TestEigenvector_Cycle(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	res, err := spectral.Eigenvector(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	want := 1.0 / math.Sqrt(5)
	for v, s := range res.Scores {
		assert.InDelta(t, want, s, 1e-9, "node %d", v)
	}
}

// TestEigenvector_TwoCycleWithBystander: mass concentrates on the strongly
// connected pair; the node outside it decays to zero.
func TestEigenvector_TwoCycleWithBystander(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 0, 0))

	res, err := spectral.Eigenvector(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	want := 1.0 / math.Sqrt(2)
	assert.InDelta(t, want, res.Scores[0], 1e-9)
	assert.InDelta(t, want, res.Scores[1], 1e-9)
	assert.InDelta(t, 0.0, res.Scores[2], 1e-9)
}

// TestEigenvector_Complete: full symmetry means a uniform score.
func TestEigenvector_Complete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	res, err := spectral.Eigenvector(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	want := 0.5 // 1/√4
	for v, s := range res.Scores {
		assert.InDelta(t, want, s, 1e-9, "node %d", v)
	}
}
