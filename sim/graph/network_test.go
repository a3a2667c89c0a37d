package graph

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork_AddEdge_Undirected_StoresBothArcs(t *testing.T) {
	nw := NewNetwork(3, false)
	require.NoError(t, nw.AddEdge(0, 2))

	assert.Equal(t, 2, nw.ArcCount())
	assert.Equal(t, []int{2}, nw.Successors(0))
	assert.Equal(t, []int{0}, nw.Successors(2))
	assert.Equal(t, 1, nw.InDegree(0))
	assert.Equal(t, 1, nw.InDegree(2))
	assert.Empty(t, nw.Successors(1))
}

func TestNetwork_AddEdge_DuplicateIgnored(t *testing.T) {
	nw := NewNetwork(2, true)
	require.NoError(t, nw.AddEdge(0, 1))
	require.NoError(t, nw.AddEdge(0, 1))
	assert.Equal(t, 1, nw.ArcCount())
}

func TestNetwork_AddEdge_Rejections(t *testing.T) {
	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"negative tail", -1, 0, ErrVertexOutOfRange},
		{"head past end", 0, 3, ErrVertexOutOfRange},
		{"self loop", 1, 1, ErrSelfLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nw := NewNetwork(3, true)
			err := nw.AddEdge(tt.u, tt.v)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestNetwork_AddEdge_AfterRead_Frozen(t *testing.T) {
	nw := NewNetwork(3, true)
	require.NoError(t, nw.AddEdge(0, 1))
	_ = nw.Successors(0)

	err := nw.AddEdge(1, 2)
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestNetwork_Successors_SortedAndConcurrentSafe(t *testing.T) {
	nw := NewNetwork(6, true)
	for _, v := range []int{5, 2, 4, 1} {
		require.NoError(t, nw.AddEdge(0, v))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []int{1, 2, 4, 5}, nw.Successors(0))
		}()
	}
	wg.Wait()
	assert.Equal(t, []int{0}, nw.Predecessors(4))
	assert.Equal(t, 4, nw.OutDegree(0))
}

func TestBuilders_Shapes(t *testing.T) {
	ring, err := Ring(5, false)
	require.NoError(t, err)
	assert.Equal(t, 5, ring.VertexCount())
	assert.Equal(t, 10, ring.ArcCount())
	assert.Equal(t, []int{1, 4}, ring.Successors(0))

	directedRing, err := Ring(5, true)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, directedRing.Successors(4))

	path, err := Path(4, true)
	require.NoError(t, err)
	assert.Equal(t, 3, path.ArcCount())
	assert.Empty(t, path.Successors(3))

	star, err := Star(4, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, star.Successors(0))
	assert.Equal(t, 1, star.InDegree(3))

	complete, err := Complete(4, false)
	require.NoError(t, err)
	assert.Equal(t, 12, complete.ArcCount())
}

func TestBuilders_TooFewVertices(t *testing.T) {
	_, err := Ring(2, true)
	assert.ErrorIs(t, err, ErrTooFewVertices)
	_, err = Path(1, true)
	assert.ErrorIs(t, err, ErrTooFewVertices)
	_, err = Star(1, true)
	assert.ErrorIs(t, err, ErrTooFewVertices)
	_, err = Complete(0, true)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestErdosRenyi_SameSeed_SameGraph(t *testing.T) {
	a, err := ErdosRenyi(30, 0.2, true, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := ErdosRenyi(30, 0.2, true, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Equal(t, a.ArcCount(), b.ArcCount())
	for v := 0; v < 30; v++ {
		assert.Equal(t, a.Successors(v), b.Successors(v), "vertex %d", v)
	}
}

func TestErdosRenyi_Extremes(t *testing.T) {
	empty, err := ErdosRenyi(6, 0, false, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.ArcCount())

	full, err := ErdosRenyi(6, 1, false, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 30, full.ArcCount())

	_, err = ErdosRenyi(6, 1.5, false, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidProbability)
	_, err = ErdosRenyi(6, 0.5, false, nil)
	assert.ErrorIs(t, err, ErrNeedRandSource)
}

func TestLoadEdgeList(t *testing.T) {
	input := `# comment
% matrix-market style comment
0 1
1 2 0.5

2 2
4 0
`
	nw, err := LoadEdgeList(strings.NewReader(input), true)
	require.NoError(t, err)

	// THEN the vertex count covers the largest id and the self loop is dropped
	assert.Equal(t, 5, nw.VertexCount())
	assert.Equal(t, 3, nw.ArcCount())
	assert.Equal(t, []int{0}, nw.Successors(4))
	assert.Empty(t, nw.Successors(3))
}

func TestLoadEdgeList_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single column", "0\n"},
		{"not a number", "a b\n"},
		{"negative id", "0 -1\n"},
		{"only comments", "# nothing\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEdgeList(strings.NewReader(tt.input), true)
			assert.Error(t, err)
		})
	}

	_, err := LoadEdgeList(strings.NewReader("1 1\n"), true)
	assert.ErrorIs(t, err, ErrEmptyEdgeList)
}

func TestLoadEdgeList_HugeVertexID_Rejected(t *testing.T) {
	// GIVEN a single edge whose id would allocate billions of vertices
	_, err := LoadEdgeList(strings.NewReader("0 2000000000\n"), true)

	// THEN it is rejected before the network is built
	assert.ErrorIs(t, err, ErrVertexOutOfRange)
	assert.ErrorContains(t, err, "line 1")
}

func TestLoadEdgeListFile_Missing(t *testing.T) {
	_, err := LoadEdgeListFile("/nonexistent/edges.txt", true)
	assert.Error(t, err)
}

func TestNetwork_Degrees(t *testing.T) {
	// GIVEN a directed star with hub 0 and leaves 1..3
	nw, err := Star(4, true)
	require.NoError(t, err)
	assert.Equal(t, DegreeStats{MaxInDegree: 1, MaxOutDegree: 3}, nw.Degrees())

	// GIVEN two arcs into vertex 1 and isolated vertices 3 and 4
	nw = NewNetwork(5, true)
	require.NoError(t, nw.AddEdge(0, 1))
	require.NoError(t, nw.AddEdge(2, 1))
	assert.Equal(t, DegreeStats{MaxInDegree: 2, MaxOutDegree: 1, Isolated: 2}, nw.Degrees())

	// AND reading degrees freezes the network
	assert.ErrorIs(t, nw.AddEdge(3, 4), ErrFrozen)
}
