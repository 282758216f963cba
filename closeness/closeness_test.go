package closeness_test

import (
	"errors"
	"math"
	"testing"

	"github.com/netmetrics/netmetrics/builder"
	"github.com/netmetrics/netmetrics/closeness"
	"github.com/netmetrics/netmetrics/core"
)

const tol = 1e-12

// TestCompute_Errors verifies nil-graph and negative-weight rejection.
func TestCompute_Errors(t *testing.T) {
	if _, err := closeness.Compute(nil); !errors.Is(err, closeness.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}

	g, _ := core.NewGraph(2, core.WithWeighted())
	if err := g.AddEdge(0, 1, -1); err != nil {
		t.Fatal(err)
	}
	if _, err := closeness.Compute(g); !errors.Is(err, closeness.ErrNegativeWeight) {
		t.Errorf("negative weight: want ErrNegativeWeight, got %v", err)
	}
}

// TestCompute_Degenerate covers the zero- and one-node graphs.
func TestCompute_Degenerate(t *testing.T) {
	g, _ := core.NewGraph(0)
	scores, err := closeness.Compute(g)
	if err != nil || len(scores) != 0 {
		t.Errorf("empty graph: got (%v, %v)", scores, err)
	}

	g, _ = core.NewGraph(1)
	scores, err = closeness.Compute(g)
	if err != nil {
		t.Fatal(err)
	}
	if scores[0] != 0 {
		t.Errorf("single node: closeness = %g; want 0", scores[0])
	}
}

// TestCompute_Path checks the exact Wasserman–Faust values on 0→1→2→3:
// the sink node 3 reaches no one and gets exactly 0, never NaN.
func TestCompute_Path(t *testing.T) {
	g, err := builder.Path(4)
	if err != nil {
		t.Fatal(err)
	}
	scores, err := closeness.Compute(g)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{
		0.5,       // reaches 3, farness 6: (3/3)·(3/6)
		4.0 / 9.0, // reaches 2, farness 3: (2/3)·(2/3)
		1.0 / 3.0, // reaches 1, farness 1: (1/3)·(1/1)
		0,         // sink
	}
	for v := range want {
		if math.Abs(scores[v]-want[v]) > tol {
			t.Errorf("closeness[%d] = %g; want %g", v, scores[v], want[v])
		}
		if math.IsNaN(scores[v]) {
			t.Errorf("closeness[%d] is NaN", v)
		}
	}
}

// TestCompute_Cycle: every node of C_k reaches everyone, closeness 2/k.
func TestCompute_Cycle(t *testing.T) {
	for _, k := range []int{3, 4, 7} {
		g, err := builder.Cycle(k)
		if err != nil {
			t.Fatal(err)
		}
		scores, err := closeness.Compute(g)
		if err != nil {
			t.Fatal(err)
		}
		want := 2.0 / float64(k)
		for v, s := range scores {
			if math.Abs(s-want) > tol {
				t.Errorf("k=%d: closeness[%d] = %g; want %g", k, v, s, want)
			}
		}
	}
}

// TestCompute_IsolatedNode: an isolated node stays at exactly 0 while the
// rest of the graph is scored against the full node count.
func TestCompute_IsolatedNode(t *testing.T) {
	g, _ := core.NewGraph(3)
	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Fatal(err)
	}
	// node 2 is isolated

	scores, err := closeness.Compute(g)
	if err != nil {
		t.Fatal(err)
	}
	if scores[2] != 0 {
		t.Errorf("isolated node: closeness = %g; want exactly 0", scores[2])
	}
	// node 0 reaches one of two others at distance 1: (1/2)·(1/1).
	if math.Abs(scores[0]-0.5) > tol {
		t.Errorf("closeness[0] = %g; want 0.5", scores[0])
	}
}

// TestCompute_Weighted: weighted distances feed the farness sum.
func TestCompute_Weighted(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithWeighted())
	if err := g.AddEdge(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2, 2); err != nil {
		t.Fatal(err)
	}

	scores, err := closeness.Compute(g)
	if err != nil {
		t.Fatal(err)
	}
	// node 0: reaches 2 with farness 2+4=6 → (2/2)·(2/6) = 1/3.
	if math.Abs(scores[0]-1.0/3.0) > tol {
		t.Errorf("closeness[0] = %g; want 1/3", scores[0])
	}
	if scores[2] != 0 {
		t.Errorf("sink closeness = %g; want 0", scores[2])
	}
}

// TestCompute_WeightedShortcut: Dijkstra must prefer the cheap detour over
// the heavy direct arc.
func TestCompute_WeightedShortcut(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithWeighted())
	if err := g.AddEdge(0, 2, 10); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2, 1); err != nil {
		t.Fatal(err)
	}

	scores, err := closeness.Compute(g)
	if err != nil {
		t.Fatal(err)
	}
	// node 0: dist(1)=1, dist(2)=2 via detour → farness 3 → (2/2)·(2/3).
	if math.Abs(scores[0]-2.0/3.0) > tol {
		t.Errorf("closeness[0] = %g; want 2/3", scores[0])
	}
}
