// Package kruskal - the component Partition used for cycle detection.
package kruskal

// Class reports how a candidate edge relates to the current partition.
type Class int

const (
	// Cyclic: both endpoints already share one component; accepting the
	// edge would close a cycle.
	Cyclic Class = iota

	// NewPair: neither endpoint belongs to any component yet.
	NewPair

	// ExtendsOne: exactly one endpoint belongs to exactly one component.
	ExtendsOne

	// MergesTwo: the endpoints belong to two distinct components.
	MergesTwo
)

// Placement is the outcome of Partition.Classify: a Class plus the slot
// indices of the matched component(s).
//
//	Cyclic     — A is the shared component, B is -1.
//	NewPair    — A and B are -1.
//	ExtendsOne — A is the single matched component, B is -1.
//	MergesTwo  — A and B are the two matched components, A < B.
//
// A Placement is only valid against the exact partition state it was
// classified on; Apply consumes it before any other mutation.
type Placement struct {
	Class Class
	A     int
	B     int
}

// Partition is an ordered collection of pairwise-disjoint sets of node
// indices. It holds exactly the nodes touched by edges accepted so far;
// an index no accepted edge has reached is absent, not a singleton set.
//
// The structure is intentionally literal: Classify walks the component
// list once per edge, O(total nodes) in the worst case, instead of the
// near-O(1) find of a disjoint-set forest. Both yield identical observable
// MSTs; this variant keeps every merge step inspectable.
type Partition struct {
	sets []map[int]struct{}
}

// NewPartition returns an empty partition.
func NewPartition() *Partition {
	return &Partition{}
}

// Len returns the number of components.
func (p *Partition) Len() int {
	return len(p.sets)
}

// Connected reports whether u and v already share a component.
//
// Complexity: O(number of components).
func (p *Partition) Connected(u, v int) bool {
	var hasU, hasV bool
	for _, s := range p.sets {
		_, hasU = s[u]
		_, hasV = s[v]
		if hasU && hasV {
			return true
		}
	}

	return false
}

// Classify scans the partition once and reports where the edge (u, v)
// lands: Cyclic, NewPair, ExtendsOne or MergesTwo (see Class).
//
// Returns ErrPartitionCorrupt if the endpoints match more than two
// components: impossible while the sets stay disjoint, so any occurrence
// means the bookkeeping is broken and the run must abort.
//
// Complexity: O(number of sets × average set size), the documented
// simplicity-over-efficiency trade.
func (p *Partition) Classify(u, v int) (Placement, error) {
	var (
		pl      = Placement{Class: NewPair, A: -1, B: -1}
		matched int
		hasU    bool
		hasV    bool
	)
	for i, s := range p.sets {
		_, hasU = s[u]
		_, hasV = s[v]
		switch {
		case hasU && hasV:
			// Both endpoints inside one component ⇒ the edge closes a cycle.
			return Placement{Class: Cyclic, A: i, B: -1}, nil
		case hasU || hasV:
			switch matched {
			case 0:
				pl.A = i
			case 1:
				pl.B = i
			default:
				// A third match violates disjointness.
				return Placement{}, ErrPartitionCorrupt
			}
			matched++
		}
	}

	switch matched {
	case 0:
		pl.Class = NewPair
	case 1:
		pl.Class = ExtendsOne
	default:
		pl.Class = MergesTwo
	}

	return pl, nil
}

// Apply mutates the partition for the accepted edge (u, v) according to pl,
// which must come from Classify of the same endpoints on the current state.
// Cyclic placements are a no-op; the accept loop discards those edges
// before ever calling Apply.
//
//	NewPair    — append a fresh two-element component {u, v}.
//	ExtendsOne — add both endpoints to component A (one is already there).
//	MergesTwo  — fold component B into component A and remove slot B.
//
// Merging always folds into the lower slot (Classify guarantees A < B), so
// slots below A keep their indices; slots above B shift down by one.
//
// Complexity: O(1) except MergesTwo, which is O(|component B|).
func (p *Partition) Apply(u, v int, pl Placement) {
	switch pl.Class {
	case NewPair:
		p.sets = append(p.sets, map[int]struct{}{u: {}, v: {}})
	case ExtendsOne:
		p.sets[pl.A][u] = struct{}{}
		p.sets[pl.A][v] = struct{}{}
	case MergesTwo:
		for m := range p.sets[pl.B] {
			p.sets[pl.A][m] = struct{}{}
		}
		p.sets = append(p.sets[:pl.B], p.sets[pl.B+1:]...)
	case Cyclic:
		// Discarded upstream; nothing to mutate.
	}
}
