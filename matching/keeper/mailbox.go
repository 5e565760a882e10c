package keeper

import (
	"cosmossdk.io/log"

	"github.com/openalpha/joinbox/matching/idset"
	"github.com/openalpha/joinbox/matching/types"
)

// MailBox is the single-consumer message queue a set of cases is registered
// against. Cases must be added before the mailbox is initialized and before
// any message has ever been stored; once either has happened, the case
// vector is permanently frozen.
type MailBox[M any] struct {
	name   string
	logger log.Logger
	metrics *Metrics

	store Store[M]
	ids   *idset.Set

	idFactory *types.IDFactory
	cases     []CaseHandler[M]

	initialized  bool
	everStored   bool
	patternSizeL int
}

// NewMailBox builds an empty, uninitialized mailbox named name. name is used
// only as a metrics/log label.
func NewMailBox[M any](name string, logger log.Logger) *MailBox[M] {
	return &MailBox[M]{
		name:      name,
		logger:    logger.With("module", "matching/mailbox", "mailbox", name),
		metrics:   GetMetrics(),
		store:     make(Store[M]),
		ids:       idset.New(),
		idFactory: types.NewIDFactory(),
	}
}

// AddCase registers a case's handler. Fatal if the mailbox has already been
// initialized or has ever stored a message.
func (mb *MailBox[M]) AddCase(h CaseHandler[M]) error {
	if mb.initialized || mb.everStored {
		return types.ErrMailboxFrozen.Wrapf("mailbox %q: cases are frozen", mb.name)
	}
	mb.cases = append(mb.cases, h)
	return nil
}

// Init marks the mailbox ready to accept messages. Fatal if the store is
// currently non-empty; safe to call again once the store has drained back to
// empty, making Init idempotent across a mailbox's lifetime.
func (mb *MailBox[M]) Init() error {
	if len(mb.store) > 0 {
		return types.ErrMailboxAlreadyModified.Wrapf("mailbox %q: store is non-empty", mb.name)
	}
	mb.initialized = true
	return nil
}

// Process stores msg, assigns it a fresh MessageID, drives every registered
// case, and — if one or more cases completed a match — arbitrates fairly
// among them and removes the winning ids everywhere before returning the
// winning match. It returns (nil, nil) if msg did not complete any case.
func (mb *MailBox[M]) Process(msg M) (*types.MatchedMessages[M], error) {
	mb.everStored = true
	mb.metrics.MessagesProcessed.WithLabelValues(mb.name).Inc()

	if mb.patternSizeL == 0 {
		for _, c := range mb.cases {
			if c.Size() > mb.patternSizeL {
				mb.patternSizeL = c.Size()
			}
		}
	}

	id := mb.idFactory.Next()
	mb.store[id] = msg
	mb.ids.Insert(id)

	var matches []types.CaseMatch
	for ci, c := range mb.cases {
		if ids, ok := c.Consume(id, mb.store); ok {
			matches = append(matches, types.CaseMatch{Case: types.CaseID(ci), IDs: ids})
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	winnerIdx := types.FairestIndex(matches, mb.patternSizeL)
	winner := matches[winnerIdx]
	winnerKey := types.Sorted(winner.IDs, mb.patternSizeL)
	for i, cm := range matches {
		// The winner's key is the smallest, so "not less than" means equal.
		if i != winnerIdx && !winnerKey.Less(types.Sorted(cm.IDs, mb.patternSizeL)) {
			mb.metrics.FairnessTiesBroken.WithLabelValues(mb.name).Inc()
			break
		}
	}

	// Remove the winning ids from every case before removing them from the
	// store: a handler's Remove (e.g. PartitionsMatcher) may still need to
	// read the messages from the store to recompute their shard keys.
	for _, c := range mb.cases {
		c.Remove(winner.IDs, mb.store)
	}

	messages := make([]M, len(winner.IDs))
	for i, wid := range winner.IDs {
		messages[i] = mb.store[wid]
		delete(mb.store, wid)
		mb.ids.Remove(wid)
	}

	mb.metrics.CaseFirings.WithLabelValues(mb.name, winner.Case.String()).Inc()
	mb.logger.Debug("case fired", "case", winner.Case, "ids", winner.IDs)

	return types.NewMatchedMessages(winner.Case, messages), nil
}

// UnmatchedIDs returns every id currently retained in the store, oldest
// first.
func (mb *MailBox[M]) UnmatchedIDs() []types.MessageID {
	return mb.ids.Slice()
}

// ExtractUnmatched drains every retained message in age order and resets the
// mailbox to empty, ready for reuse: its case handlers, store, and id set are
// all cleared, but its registered cases and their artifacts are kept. Used by
// MailBoxManager when switching the active mailbox away from this one.
func (mb *MailBox[M]) ExtractUnmatched() []M {
	ids := mb.UnmatchedIDs()
	out := make([]M, len(ids))
	for i, id := range ids {
		out[i] = mb.store[id]
	}
	mb.store = make(Store[M])
	mb.ids = idset.New()
	for _, c := range mb.cases {
		c.Reset()
	}
	return out
}
