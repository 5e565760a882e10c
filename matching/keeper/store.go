// Package keeper holds the matching backends (brute force, stateful tree,
// partitions), the mailbox that drives them, and the mailbox manager that
// switches between mailboxes. It mirrors the teacher's keeper package: the
// types package is pure data, keeper is where behavior lives.
package keeper

import "github.com/openalpha/joinbox/matching/types"

// Store is the mailbox's message table, keyed by id. It is a map, so passing
// it to a CaseHandler shares the same underlying table rather than copying
// it; a handler must never retain it beyond the call in which it was passed.
type Store[M any] map[types.MessageID]M

// Get returns the message stored under id, if any.
func (s Store[M]) Get(id types.MessageID) (M, bool) {
	m, ok := s[id]
	return m, ok
}
