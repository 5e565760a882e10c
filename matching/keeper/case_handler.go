package keeper

import "github.com/openalpha/joinbox/matching/types"

// CaseHandler is one case's matcher: a backend that tracks unmatched
// messages accepted by its pattern and, on every new arrival, tries to
// complete a match. MailBox holds one CaseHandler per declared case and
// drives all of them identically, regardless of which backend or middleware
// is underneath.
type CaseHandler[M any] interface {
	// Consume is called once per arriving message, after the message is
	// already present in store under id. It returns the MatchedIDs of a
	// completed, guard-satisfying match in pattern-position order, or
	// ok=false if id did not complete a match for this case.
	Consume(id types.MessageID, store Store[M]) (types.MatchedIDs, bool)

	// Remove discards every retained reference to the given ids: they were
	// consumed by a winning match (possibly belonging to a different case)
	// and must never be offered again. store still contains every message in
	// ids when Remove is called.
	Remove(ids types.MatchedIDs, store Store[M])

	// IsEmpty reports whether the handler currently retains no messages.
	IsEmpty() bool

	// Reset discards every retained partial match or accepted id
	// unconditionally, without needing to consult store. Used when a
	// mailbox is emptied wholesale (manager mailbox switch).
	Reset()

	// Size returns the case's pattern size C.
	Size() int
}
