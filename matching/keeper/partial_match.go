package keeper

import "github.com/openalpha/joinbox/matching/types"

// PartialMatch is one node's accumulated state in the stateful tree: a
// fixed-length slot array (zero = empty, since IDFactory never assigns id 0)
// and how many slots are filled.
type PartialMatch struct {
	Slots   []types.MessageID
	Counter int
}

// emptyPartialMatch returns the root's partial match: every slot empty.
func emptyPartialMatch(size int) PartialMatch {
	return PartialMatch{Slots: make([]types.MessageID, size)}
}

// clone returns a copy of pm whose Slots array can be mutated independently.
func (pm PartialMatch) clone() PartialMatch {
	slots := make([]types.MessageID, len(pm.Slots))
	copy(slots, pm.Slots)
	return PartialMatch{Slots: slots, Counter: pm.Counter}
}
