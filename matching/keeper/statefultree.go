package keeper

import "github.com/openalpha/joinbox/matching/types"

// treeNode is one accumulated partial match together with every deeper
// partial match reachable by extending it further.
type treeNode struct {
	match    PartialMatch
	children []*treeNode
}

// StatefulTreeMatcher is the incremental backend (spec §4.5): it retains a
// tree of partial matches rooted at the empty match, so each arrival extends
// every still-open partial match it fits rather than re-scanning every
// retained message from scratch.
type StatefulTreeMatcher[M any] struct {
	artifact *types.CaseArtifact[M]
	root     *treeNode
}

// NewStatefulTreeMatcher builds an empty StatefulTreeMatcher for one case.
func NewStatefulTreeMatcher[M any](artifact *types.CaseArtifact[M]) *StatefulTreeMatcher[M] {
	return &StatefulTreeMatcher[M]{
		artifact: artifact,
		root:     &treeNode{match: emptyPartialMatch(artifact.Size)},
	}
}

func (t *StatefulTreeMatcher[M]) Size() int { return t.artifact.Size }

func (t *StatefulTreeMatcher[M]) IsEmpty() bool { return len(t.root.children) == 0 }

// extend tries to place msg into the first open slot of pm's group, per
// GroupOf(msg). It reports ok=false if msg is not accepted, its group's slot
// range is already full, or the group index is out of range.
func (t *StatefulTreeMatcher[M]) extend(pm PartialMatch, msg M, id types.MessageID) (PartialMatch, bool) {
	if !t.artifact.Accept(msg) {
		return PartialMatch{}, false
	}
	group := t.artifact.GroupOf(msg)
	if group < 0 || group >= len(t.artifact.Groups) {
		return PartialMatch{}, false
	}
	start, end := t.artifact.Groups.SlotRange(group)

	next := pm.clone()
	for slot := start; slot < end; slot++ {
		if next.Slots[slot] == 0 {
			next.Slots[slot] = id
			next.Counter++
			return next, true
		}
	}
	return PartialMatch{}, false
}

// completedIDs applies mapping to a fully-filled match's slots.
func completedIDs(match PartialMatch, mapping types.Mapping) types.MatchedIDs {
	return types.ApplyMapping(match.Slots, mapping)
}

// tryNode recurses depth-first into node's children before attempting to
// extend node itself, reproducing the spec's "deepest-first" insertion order:
// a new message extends every compatible partial match in the tree, each
// extension becoming a child of the node it extends, and only the root's own
// direct extension becomes a new root child.
func (t *StatefulTreeMatcher[M]) tryNode(node *treeNode, id types.MessageID, msg M, store Store[M]) (types.MatchedIDs, bool) {
	for _, child := range node.children {
		if ids, ok := t.tryNode(child, id, msg, store); ok {
			return ids, true
		}
	}

	next, ok := t.extend(node.match, msg, id)
	if !ok {
		return nil, false
	}

	if next.Counter == t.artifact.Size {
		msgs := make([]M, len(next.Slots))
		for i, slotID := range next.Slots {
			msgs[i], _ = store.Get(slotID)
		}
		for _, mapping := range t.artifact.Mappings {
			if t.artifact.Guard(msgs, mapping) {
				return completedIDs(next, mapping), true
			}
		}
		// Complete but no mapping satisfies the guard: discarded, never
		// retained. The message may still complete a different, shallower
		// partial match via another node's extension, but not this one.
		return nil, false
	}

	node.children = append(node.children, &treeNode{match: next})
	return nil, false
}

// Consume implements CaseHandler.
func (t *StatefulTreeMatcher[M]) Consume(id types.MessageID, store Store[M]) (types.MatchedIDs, bool) {
	msg, ok := store.Get(id)
	if !ok || !t.artifact.Accept(msg) {
		return nil, false
	}
	return t.tryNode(t.root, id, msg, store)
}

// Remove implements CaseHandler: every node (and its whole subtree) whose
// Slots contains a removed id is pruned, preserving the remaining siblings'
// relative order.
func (t *StatefulTreeMatcher[M]) Remove(ids types.MatchedIDs, store Store[M]) {
	removed := make(map[types.MessageID]bool, len(ids))
	for _, id := range ids {
		removed[id] = true
	}
	t.root.children = filterChildren(t.root.children, removed)
}

func filterChildren(children []*treeNode, removed map[types.MessageID]bool) []*treeNode {
	var kept []*treeNode
	for _, child := range children {
		if containsRemoved(child.match, removed) {
			continue
		}
		child.children = filterChildren(child.children, removed)
		kept = append(kept, child)
	}
	return kept
}

// Reset implements CaseHandler.
func (t *StatefulTreeMatcher[M]) Reset() {
	t.root = &treeNode{match: emptyPartialMatch(t.artifact.Size)}
}

func containsRemoved(pm PartialMatch, removed map[types.MessageID]bool) bool {
	for _, slot := range pm.Slots {
		if slot != 0 && removed[slot] {
			return true
		}
	}
	return false
}
