package slc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, CenterMidpoint, cfg.CenterRule)
	assert.Nil(t, cfg.Logger)
}

func TestCluster_ZeroValueConfigUsesDefaults(t *testing.T) {
	d, err := Cluster([]float64{1, 2, 4}, Config{})
	require.NoError(t, err)
	assert.Equal(t, 5, len(d.Nodes))
}

func TestCluster_InvalidCenterRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CenterRule = "centroid"
	_, err := Cluster([]float64{1, 2}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "centroid")
}

func TestCluster_RejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		index  string
	}{
		{"nan", []float64{1, math.NaN(), 3}, "point 1"},
		{"+inf", []float64{math.Inf(1), 0}, "point 0"},
		{"-inf", []float64{0, 1, math.Inf(-1)}, "point 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cluster(tt.points, DefaultConfig())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNonFinite))
			assert.Contains(t, err.Error(), tt.index)
		})
	}
}

func TestBuild_NonFiniteDoesNotPanic(t *testing.T) {
	d := Build([]float64{1, math.NaN(), math.Inf(1), -2})
	assert.Equal(t, 7, len(d.Nodes))
}

func TestCluster_DoesNotAliasInput(t *testing.T) {
	points := []float64{3, 1, 2}
	d, err := Cluster(points, DefaultConfig())
	require.NoError(t, err)

	points[0] = 100
	assert.Equal(t, 3.0, d.Points[0])
	assert.Equal(t, 3.0, d.Nodes[0].Center)
}

func TestCluster_Empty(t *testing.T) {
	d, err := Cluster(nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, d.Nodes)
	assert.Equal(t, None, d.Root())
	assert.Nil(t, d.Linkage())
}

func TestCluster_SinglePoint(t *testing.T) {
	d, err := Cluster([]float64{5.0}, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, d.Nodes, 1)
	leaf := d.Nodes[0]
	assert.True(t, d.IsLeaf(0))
	assert.Equal(t, 5.0, leaf.Center)
	assert.Equal(t, 0, leaf.Left)
	assert.Equal(t, 0, leaf.Right)
	assert.False(t, leaf.IsMerged())
	assert.Equal(t, 0, d.Root())
	assert.Equal(t, Stats{}, d.Stats)
}

func TestCluster_TwoPointsOrderIndependent(t *testing.T) {
	for _, points := range [][]float64{{3.0, 1.0}, {1.0, 3.0}} {
		d, err := Cluster(points, DefaultConfig())
		require.NoError(t, err)
		require.Len(t, d.Nodes, 3)

		root := d.Nodes[2]
		assert.ElementsMatch(t, []int{0, 1}, []int{root.Left, root.Right})
		assert.Equal(t, 2.0, root.Height)
		assert.Equal(t, 2.0, root.Center)
		assert.Equal(t, 2, d.Nodes[0].Parent)
		assert.Equal(t, 2, d.Nodes[1].Parent)
	}
}

func TestCluster_TwoPairsTieBreaksLeftmostFirst(t *testing.T) {
	for _, rule := range []CenterRule{CenterMidpoint, CenterWeighted} {
		t.Run(string(rule), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CenterRule = rule
			d, err := Cluster([]float64{0.0, 1.0, 10.0, 11.0}, cfg)
			require.NoError(t, err)
			require.Len(t, d.Nodes, 7)

			// Both pairs are 1.0 apart; the left one merges first.
			assert.Equal(t, [2]int{0, 1}, [2]int{d.Nodes[4].Left, d.Nodes[4].Right})
			assert.Equal(t, [2]int{2, 3}, [2]int{d.Nodes[5].Left, d.Nodes[5].Right})
			assert.Equal(t, [2]int{4, 5}, [2]int{d.Nodes[6].Left, d.Nodes[6].Right})
			assert.Equal(t, []float64{1, 1, 10}, d.Heights())
		})
	}
}

func TestCluster_AllEqualCollapsesLeftToRight(t *testing.T) {
	d, err := Cluster([]float64{2.0, 2.0, 2.0}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, d.Nodes, 5)

	assert.Equal(t, []float64{0, 0}, d.Heights())
	assert.Equal(t, [2]int{0, 1}, [2]int{d.Nodes[3].Left, d.Nodes[3].Right})
	assert.Equal(t, [2]int{3, 2}, [2]int{d.Nodes[4].Left, d.Nodes[4].Right})
	assert.Equal(t, 1, d.Stats.Stale)
}

func TestCluster_AllEqualLongerChain(t *testing.T) {
	d, err := Cluster([]float64{7, 7, 7, 7, 7}, DefaultConfig())
	require.NoError(t, err)

	// Each merge absorbs the next point to the right.
	prev := 0
	for i, id := 0, 5; id < len(d.Nodes); i, id = i+1, id+1 {
		c := d.Nodes[id]
		assert.Equal(t, prev, c.Left, "merge %d", i)
		assert.Equal(t, i+1, c.Right, "merge %d", i)
		prev = id
	}
}

func TestCluster_CenterRulesDiverge(t *testing.T) {
	// Once {0,1,2} has merged, midpoint puts its center at 1.25 and weighted
	// at 1.0. Point 4 then sits 2.75 or 3.0 away, either side of its 2.9 gap
	// to 6.9, so the two rules pick different partners for it.
	points := []float64{0, 1, 2, 4, 6.9}

	mid, err := Cluster(points, Config{CenterRule: CenterMidpoint})
	require.NoError(t, err)
	wtd, err := Cluster(points, Config{CenterRule: CenterWeighted})
	require.NoError(t, err)

	assert.Equal(t, [2]int{6, 3}, [2]int{mid.Nodes[7].Left, mid.Nodes[7].Right})
	assert.Equal(t, [2]int{3, 4}, [2]int{wtd.Nodes[7].Left, wtd.Nodes[7].Right})
}

func TestCluster_LargeFinitePointsStayFinite(t *testing.T) {
	points := []float64{1.6e308, 1.65e308, 1.7e308, 1.75e308, 0}
	for _, rule := range []CenterRule{CenterMidpoint, CenterWeighted} {
		d, err := Cluster(points, Config{CenterRule: rule})
		require.NoError(t, err)
		require.Len(t, d.Nodes, 9)

		for id, c := range d.Nodes {
			assert.False(t, math.IsInf(c.Center, 0) || math.IsNaN(c.Center), "%s: node %d center %v", rule, id, c.Center)
			assert.False(t, math.IsInf(c.Height, 0) || math.IsNaN(c.Height), "%s: node %d height %v", rule, id, c.Height)
		}
		// The four large points join before 0 does.
		assert.Equal(t, 4, d.Nodes[d.Nodes[8].Right].Size, rule)
		assert.Equal(t, 4, d.Nodes[8].Left, rule)
	}
}
