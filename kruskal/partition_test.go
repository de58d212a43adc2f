package kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomst/geomst/kruskal"
)

// classify is a small helper asserting Classify succeeds.
func classify(t *testing.T, p *kruskal.Partition, u, v int) kruskal.Placement {
	t.Helper()
	pl, err := p.Classify(u, v)
	require.NoError(t, err)

	return pl
}

// TestPartition_NewPair verifies the empty-partition transition: an edge
// between two untouched nodes creates one fresh two-element component.
func TestPartition_NewPair(t *testing.T) {
	p := kruskal.NewPartition()
	assert.Zero(t, p.Len())

	pl := classify(t, p, 0, 1)
	assert.Equal(t, kruskal.NewPair, pl.Class)
	assert.Equal(t, -1, pl.A)
	assert.Equal(t, -1, pl.B)

	p.Apply(0, 1, pl)
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Connected(0, 1))
}

// TestPartition_ExtendsOne verifies that an edge with exactly one known
// endpoint grows the matched component instead of spawning a new one.
func TestPartition_ExtendsOne(t *testing.T) {
	p := kruskal.NewPartition()
	p.Apply(0, 1, classify(t, p, 0, 1))

	pl := classify(t, p, 1, 2)
	assert.Equal(t, kruskal.ExtendsOne, pl.Class)
	assert.Equal(t, 0, pl.A)
	assert.Equal(t, -1, pl.B)

	p.Apply(1, 2, pl)
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Connected(0, 2))
}

// TestPartition_MergesTwo verifies that an edge bridging two components
// folds the higher slot into the lower one and drops the emptied slot.
func TestPartition_MergesTwo(t *testing.T) {
	p := kruskal.NewPartition()
	p.Apply(0, 1, classify(t, p, 0, 1)) // slot 0: {0, 1}
	p.Apply(4, 5, classify(t, p, 4, 5)) // slot 1: {4, 5}
	require.Equal(t, 2, p.Len())

	pl := classify(t, p, 1, 4)
	assert.Equal(t, kruskal.MergesTwo, pl.Class)
	assert.Equal(t, 0, pl.A)
	assert.Equal(t, 1, pl.B)

	p.Apply(1, 4, pl)
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Connected(0, 5))
}

// TestPartition_Cyclic verifies that both endpoints inside one component
// classify as Cyclic, naming the shared slot.
func TestPartition_Cyclic(t *testing.T) {
	p := kruskal.NewPartition()
	p.Apply(0, 1, classify(t, p, 0, 1))
	p.Apply(1, 2, classify(t, p, 1, 2))

	pl := classify(t, p, 0, 2)
	assert.Equal(t, kruskal.Cyclic, pl.Class)
	assert.Equal(t, 0, pl.A)
}

// TestPartition_UntouchedNodesAbsent verifies that nodes never seen by an
// accepted edge are not represented as singleton components.
func TestPartition_UntouchedNodesAbsent(t *testing.T) {
	p := kruskal.NewPartition()
	p.Apply(3, 7, classify(t, p, 3, 7))

	// 9 is untouched: an edge 7–9 extends, an edge 8–9 is a new pair.
	pl := classify(t, p, 7, 9)
	assert.Equal(t, kruskal.ExtendsOne, pl.Class)

	pl = classify(t, p, 8, 9)
	assert.Equal(t, kruskal.NewPair, pl.Class)
	assert.False(t, p.Connected(8, 9))
}

// TestPartition_MergePreservesLowerSlots verifies the documented slot
// behavior: merging folds into the lower index, so a component below the
// merged pair keeps its slot.
func TestPartition_MergePreservesLowerSlots(t *testing.T) {
	p := kruskal.NewPartition()
	p.Apply(0, 1, classify(t, p, 0, 1)) // slot 0
	p.Apply(2, 3, classify(t, p, 2, 3)) // slot 1
	p.Apply(4, 5, classify(t, p, 4, 5)) // slot 2

	// Bridge slots 1 and 2; slot 0 must be untouched.
	p.Apply(3, 4, classify(t, p, 3, 4))
	require.Equal(t, 2, p.Len())

	pl := classify(t, p, 0, 1)
	assert.Equal(t, kruskal.Cyclic, pl.Class)
	assert.Equal(t, 0, pl.A)

	assert.True(t, p.Connected(2, 5))
	assert.False(t, p.Connected(1, 2))
}
