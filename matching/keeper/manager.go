package keeper

import "github.com/openalpha/joinbox/matching/types"

// MailBoxManager owns a fixed set of mailboxes and a single active one at a
// time, plus a replay queue of messages waiting to be (re-)offered to
// whichever mailbox is currently active. Switching the active mailbox drains
// every unmatched message out of the outgoing mailbox and requeues them at
// the front of the replay queue, oldest first, so they are the very next
// messages offered to the newly active mailbox.
type MailBoxManager[M any] struct {
	mailboxes []*MailBox[M]
	active    int
	queue     []M
}

// NewMailBoxManager builds a manager over the given mailboxes, with the
// first as active. mailboxes must be non-empty.
func NewMailBoxManager[M any](mailboxes ...*MailBox[M]) *MailBoxManager[M] {
	return &MailBoxManager[M]{mailboxes: mailboxes}
}

// ProcessIncoming appends msg to the tail of the replay queue.
func (m *MailBoxManager[M]) ProcessIncoming(msg M) {
	m.queue = append(m.queue, msg)
}

// Next pops and returns the head of the replay queue.
func (m *MailBoxManager[M]) Next() (M, bool) {
	var zero M
	if len(m.queue) == 0 {
		return zero, false
	}
	msg := m.queue[0]
	m.queue = m.queue[1:]
	return msg, true
}

// Active returns the active mailbox's index and the mailbox itself.
func (m *MailBoxManager[M]) Active() (int, *MailBox[M]) {
	return m.active, m.mailboxes[m.active]
}

// SwitchTo makes the mailbox at index target active. Every message still
// unmatched in the outgoing mailbox is extracted, in age order, and requeued
// at the front of the replay queue ahead of anything already waiting; the
// outgoing mailbox is left empty and reusable.
func (m *MailBoxManager[M]) SwitchTo(target int) {
	outgoing := m.mailboxes[m.active]
	drained := outgoing.ExtractUnmatched()
	m.queue = append(append([]M{}, drained...), m.queue...)
	m.active = target
}

// Drive pops messages off the replay queue and offers each to the active
// mailbox until the queue is empty or a message completes a match, returning
// that match. Callers typically loop on Drive, handling each match and
// calling it again.
func (m *MailBoxManager[M]) Drive() (*MatchResult[M], error) {
	_, mb := m.Active()
	for {
		msg, ok := m.Next()
		if !ok {
			return nil, nil
		}
		matched, err := mb.Process(msg)
		if err != nil {
			return nil, err
		}
		if matched != nil {
			return &MatchResult[M]{Mailbox: m.active, Match: matched}, nil
		}
	}
}

// MatchResult pairs a winning match with the index of the mailbox that
// produced it.
type MatchResult[M any] struct {
	Mailbox int
	Match   *types.MatchedMessages[M]
}
