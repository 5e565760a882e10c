package types

import "math"

// MessageID is an opaque, strictly increasing token assigned at intake.
// Total order equals age: smaller ids are older. Zero is never assigned by an
// IDFactory and is used internally by backends as an "empty slot" sentinel;
// MaxMessageID is the reserved padding value used only in fairness key
// comparisons.
type MessageID uint64

// MaxMessageID is the reserved maximum, used solely as padding so that a
// shorter pattern's fairness key compares as "infinitely in the future"
// against a longer one that consumes the same oldest prefix.
const MaxMessageID MessageID = math.MaxUint64

// IDFactory produces strictly increasing MessageIDs. Zero is reserved, so the
// first id handed out is 1.
type IDFactory struct {
	next MessageID
}

// NewIDFactory returns an IDFactory whose next id is 1.
func NewIDFactory() *IDFactory {
	return &IDFactory{next: 1}
}

// Next returns a fresh id strictly greater than every id previously returned.
func (f *IDFactory) Next() MessageID {
	id := f.next
	f.next++
	return id
}
