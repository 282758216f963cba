package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmetrics/netmetrics/builder"
	"github.com/netmetrics/netmetrics/core"
)

// TestFactories_Validation checks the sentinel errors of every factory.
func TestFactories_Validation(t *testing.T) {
	_, err := builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Cycle(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomSparse(0, 0.5, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomSparse(3, 1.5, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(3, -0.1, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

// TestPath_Shape verifies the 0→1→…→n-1 arc layout.
func TestPath_Shape(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 0, g.InDegree(0), "node 0 is the source")
	assert.Equal(t, 0, g.OutDegree(3), "node n-1 dangles")
	for i := 0; i < 3; i++ {
		arcs := g.OutArcs(i)
		require.Len(t, arcs, 1)
		assert.Equal(t, i+1, arcs[0].To)
	}
}

// TestCycle_Shape verifies uniform degree 1/1 and the wraparound arc.
func TestCycle_Shape(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.EdgeCount())
	for v := 0; v < 5; v++ {
		assert.Equal(t, 1, g.OutDegree(v))
		assert.Equal(t, 1, g.InDegree(v))
	}
	assert.Equal(t, 0, g.OutArcs(4)[0].To, "cycle closes n-1→0")
}

// TestStar_Shape verifies the hub/authority layout.
func TestStar_Shape(t *testing.T) {
	g, err := builder.Star(6)
	require.NoError(t, err)

	assert.Equal(t, 5, g.OutDegree(0))
	assert.Equal(t, 0, g.InDegree(0))
	for v := 1; v < 6; v++ {
		assert.Equal(t, 0, g.OutDegree(v))
		assert.Equal(t, 1, g.InDegree(v))
	}
}

// TestComplete_Shape verifies K_n arc counts, including the trivial K_1.
func TestComplete_Shape(t *testing.T) {
	g, err := builder.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	g, err = builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount(), "K_4 has n(n-1) arcs")
	for v := 0; v < 4; v++ {
		assert.Equal(t, 3, g.OutDegree(v))
		assert.Equal(t, 3, g.InDegree(v))
	}
}

// TestRandomSparse_Determinism: identical seeds produce identical graphs;
// the extreme probabilities produce the empty and the complete graph.
func TestRandomSparse_Determinism(t *testing.T) {
	a, err := builder.RandomSparse(10, 0.3, 42)
	require.NoError(t, err)
	b, err := builder.RandomSparse(10, 0.3, 42)
	require.NoError(t, err)

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for v := 0; v < 10; v++ {
		assert.Equal(t, a.OutArcs(v), b.OutArcs(v), "node %d adjacency differs", v)
	}

	empty, err := builder.RandomSparse(6, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := builder.RandomSparse(6, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, full.EdgeCount())
}

// TestWeightedFactories: on a weighted graph every emitted arc carries 1.0.
func TestWeightedFactories(t *testing.T) {
	g, err := builder.Cycle(4, core.WithWeighted())
	require.NoError(t, err)

	require.True(t, g.Weighted())
	for v := 0; v < 4; v++ {
		for _, a := range g.OutArcs(v) {
			assert.Equal(t, 1.0, a.Weight)
		}
	}
}
