// Package idset provides a small ascending-ordered set of MessageIDs, used
// anywhere the matching engine needs O(log n) insertion/removal while
// preserving age order: MailBox's live-id bookkeeping and BruteForceMatcher's
// accepted-id list both need exactly this.
package idset

import (
	"github.com/huandu/skiplist"
	"github.com/openalpha/joinbox/matching/types"
)

// ascending is the skiplist comparator for types.MessageID, mirroring the
// teacher's price-level comparators (priceKeyAsc in orderbook_v2.go).
type ascending struct{}

func (ascending) Compare(lhs, rhs interface{}) int {
	l := lhs.(types.MessageID)
	r := rhs.(types.MessageID)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (ascending) CalcScore(key interface{}) float64 {
	return float64(key.(types.MessageID))
}

// Set is an ascending-ordered set of MessageIDs.
type Set struct {
	list *skiplist.SkipList
}

// New returns an empty Set.
func New() *Set {
	return &Set{list: skiplist.New(ascending{})}
}

// Insert adds id to the set. Inserting an id already present is a no-op.
func (s *Set) Insert(id types.MessageID) {
	s.list.Set(id, struct{}{})
}

// Remove removes id from the set, if present.
func (s *Set) Remove(id types.MessageID) {
	s.list.Remove(id)
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id types.MessageID) bool {
	return s.list.Get(id) != nil
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	return s.list.Len()
}

// Ascend calls fn for every id in ascending order, stopping early if fn
// returns false.
func (s *Set) Ascend(fn func(id types.MessageID) bool) {
	for elem := s.list.Front(); elem != nil; elem = elem.Next() {
		if !fn(elem.Key().(types.MessageID)) {
			return
		}
	}
}

// Slice returns every id in ascending order as a plain slice.
func (s *Set) Slice() []types.MessageID {
	out := make([]types.MessageID, 0, s.list.Len())
	s.Ascend(func(id types.MessageID) bool {
		out = append(out, id)
		return true
	})
	return out
}
