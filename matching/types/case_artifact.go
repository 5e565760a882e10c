package types

// CaseArtifact is everything a setup layer (the surface-syntax compiler, out
// of scope for this module — see spec §1 and §6) must supply for one case.
// Every field is computed once, at construction, and never recomputed: the
// matching engine only ever consumes these functions and tables.
type CaseArtifact[M any] struct {
	// Size is the case's pattern size C.
	Size int

	// Accept reports whether a message is usable by this case at all, i.e.
	// matches at least one of its sub-patterns.
	Accept func(m M) bool

	// GroupOf returns the group index a message belongs to. Only called
	// after Accept(m) returned true.
	GroupOf func(m M) int

	// Groups partitions the C pattern positions into their variant groups,
	// in slot order.
	Groups GroupSizes

	// PositionGroup[i] is the group index of pattern position i.
	PositionGroup []int

	// Guard evaluates the user guard (plus the structural refutable tests)
	// given the messages read in storage-slot order and a Mapping
	// describing which slot backs which pattern position.
	Guard func(msgs []M, mapping Mapping) bool

	// Mappings is the pre-enumerated table of every legal Mapping<C> for
	// this case's groups, in a fixed deterministic order. Assignments that
	// would cross a group boundary are filtered out; they can never
	// satisfy Guard because Guard's structural checks always reject them,
	// so the stateful tree never wastes a guard call on them.
	Mappings []Mapping

	// Key and KeyLess are present only for cases eligible for partitioning
	// (spec §4.6): Key extracts the uniting-variable tuple from a message,
	// returning ok=false for messages this case does not partition on;
	// KeyLess orders two extracted keys. Both are nil for a non-partitioned
	// case.
	Key     func(m M) (key any, ok bool)
	KeyLess func(a, b any) bool
}

// NewCaseArtifact builds a CaseArtifact and pre-enumerates its legal mapping
// table from the case's groups.
func NewCaseArtifact[M any](
	size int,
	groups GroupSizes,
	positionGroup []int,
	accept func(M) bool,
	groupOf func(M) int,
	guard func([]M, Mapping) bool,
) *CaseArtifact[M] {
	return &CaseArtifact[M]{
		Size:          size,
		Accept:        accept,
		GroupOf:       groupOf,
		Groups:        groups,
		PositionGroup: positionGroup,
		Guard:         guard,
		Mappings:      enumerateLegalMappings(size, groups, positionGroup),
	}
}

// WithPartitioning attaches a key function and comparator, making the
// artifact eligible for the partitions middleware (spec §4.6).
func (ca *CaseArtifact[M]) WithPartitioning(key func(M) (any, bool), less func(a, b any) bool) *CaseArtifact[M] {
	ca.Key = key
	ca.KeyLess = less
	return ca
}

// Partitionable reports whether this case was configured for partitioning.
func (ca *CaseArtifact[M]) Partitionable() bool {
	return ca.Key != nil
}

// enumerateLegalMappings computes, once, every Mapping<C> that respects
// group membership: within each group, every bijection from that group's
// pattern positions to its slot range is legal; mappings are combined across
// groups in group order, and permutations within a group are generated in
// lexicographic order of the assigned slots, making the whole table
// deterministic.
func enumerateLegalMappings(size int, groups GroupSizes, positionGroup []int) []Mapping {
	positions := GroupPositions(len(groups), positionGroup)

	var out []Mapping
	var assign func(group int, current Mapping)
	assign = func(group int, current Mapping) {
		if group == len(groups) {
			cp := make(Mapping, size)
			copy(cp, current)
			out = append(out, cp)
			return
		}
		start, end := groups.SlotRange(group)
		slots := make([]int, 0, end-start)
		for s := start; s < end; s++ {
			slots = append(slots, s)
		}
		groupPositions := positions[group]
		permute(slots, func(perm []int) {
			next := make(Mapping, size)
			copy(next, current)
			for i, pos := range groupPositions {
				next[pos] = perm[i]
			}
			assign(group+1, next)
		})
	}
	assign(0, make(Mapping, size))
	return out
}

// AllPermutations returns every permutation of {0, ..., size-1} expressed as
// a Mapping, in lexicographic order. Used by the brute-force matcher, which
// has no group structure to narrow the search.
func AllPermutations(size int) []Mapping {
	base := make([]int, size)
	for i := range base {
		base[i] = i
	}
	var out []Mapping
	permute(base, func(perm []int) {
		cp := make(Mapping, size)
		copy(cp, perm)
		out = append(out, cp)
	})
	return out
}

// permute calls fn once for every permutation of elems (which must already be
// sorted ascending), in lexicographic order.
func permute(elems []int, fn func([]int)) {
	n := len(elems)
	if n == 0 {
		fn(nil)
		return
	}
	used := make([]bool, n)
	current := make([]int, n)
	var rec func(depth int)
	rec = func(depth int) {
		if depth == n {
			fn(current)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current[depth] = elems[i]
			rec(depth + 1)
			used[i] = false
		}
	}
	rec(0)
}
