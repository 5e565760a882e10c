package keeper

import (
	"github.com/openalpha/joinbox/matching/idset"
	"github.com/openalpha/joinbox/matching/types"
)

// BruteForceMatcher is the naive backend: it retains every accepted,
// unmatched message id in age order and, on each arrival, searches every
// C-combination of retained ids (oldest-first) against every permutation of
// {0..C} until one satisfies the guard. Unlike the stateful tree it has no
// group structure to narrow the search ahead of time, so it tries the full
// permutation table and relies on the guard's own structural checks to
// reject combinations that don't respect group membership. It trades the
// stateful tree's incremental bookkeeping for simplicity, and exists so the
// two backends can be checked against each other for equivalence.
type BruteForceMatcher[M any] struct {
	artifact     *types.CaseArtifact[M]
	ids          *idset.Set
	permutations []types.Mapping
}

// NewBruteForceMatcher builds an empty BruteForceMatcher for one case.
func NewBruteForceMatcher[M any](artifact *types.CaseArtifact[M]) *BruteForceMatcher[M] {
	return &BruteForceMatcher[M]{
		artifact:     artifact,
		ids:          idset.New(),
		permutations: types.AllPermutations(artifact.Size),
	}
}

func (b *BruteForceMatcher[M]) Size() int { return b.artifact.Size }

func (b *BruteForceMatcher[M]) IsEmpty() bool { return b.ids.Len() == 0 }

// Consume implements CaseHandler.
func (b *BruteForceMatcher[M]) Consume(id types.MessageID, store Store[M]) (types.MatchedIDs, bool) {
	msg, ok := store.Get(id)
	if !ok || !b.artifact.Accept(msg) {
		return nil, false
	}
	b.ids.Insert(id)

	size := b.artifact.Size
	if b.ids.Len() < size {
		return nil, false
	}

	candidates := b.ids.Slice()
	combo := make([]types.MessageID, size)

	var found types.MatchedIDs
	var combine func(start, depth int) bool
	combine = func(start, depth int) bool {
		if depth == size {
			msgs := make([]M, size)
			for i, cid := range combo {
				msgs[i], _ = store.Get(cid)
			}
			for _, mapping := range b.permutations {
				if b.artifact.Guard(msgs, mapping) {
					found = types.ApplyMapping(combo, mapping)
					return true
				}
			}
			return false
		}
		for i := start; i < len(candidates); i++ {
			combo[depth] = candidates[i]
			if combine(i+1, depth+1) {
				return true
			}
		}
		return false
	}

	if combine(0, 0) {
		return found, true
	}
	return nil, false
}

// Remove implements CaseHandler.
func (b *BruteForceMatcher[M]) Remove(ids types.MatchedIDs, store Store[M]) {
	for _, id := range ids {
		b.ids.Remove(id)
	}
}

// Reset implements CaseHandler.
func (b *BruteForceMatcher[M]) Reset() {
	b.ids = idset.New()
}
