package types

import "fmt"

// MatchedMessages is the output of one winning firing: the case that fired
// and its messages, in pattern-position order.
type MatchedMessages[M any] struct {
	caseID   CaseID
	messages []M
}

// NewMatchedMessages builds a MatchedMessages. messages must already be in
// pattern-position order.
func NewMatchedMessages[M any](caseID CaseID, messages []M) *MatchedMessages[M] {
	return &MatchedMessages[M]{caseID: caseID, messages: messages}
}

// CaseID returns the id of the case that fired.
func (mm *MatchedMessages[M]) CaseID() CaseID {
	return mm.caseID
}

// Len returns the number of messages carried, i.e. the case's pattern size.
func (mm *MatchedMessages[M]) Len() int {
	return len(mm.messages)
}

// IntoK consumes the match and returns its k messages, fatally erroring if k
// does not equal the case's actual pattern size (spec §7,
// PatternSizeExceeded). This is the general form of the total-to-tuple
// conversions; Into2/Into3 below cover the common small arities without a
// length argument.
func (mm *MatchedMessages[M]) IntoK(k int) ([]M, error) {
	if k != len(mm.messages) {
		return nil, ErrPatternSizeExceeded.Wrapf("case %d has pattern size %d, requested %d", mm.caseID, len(mm.messages), k)
	}
	return mm.messages, nil
}

// Into2 consumes a two-message match as a pair.
func (mm *MatchedMessages[M]) Into2() (M, M, error) {
	msgs, err := mm.IntoK(2)
	if err != nil {
		var zero M
		return zero, zero, err
	}
	return msgs[0], msgs[1], nil
}

// Into3 consumes a three-message match as a triple.
func (mm *MatchedMessages[M]) Into3() (M, M, M, error) {
	msgs, err := mm.IntoK(3)
	if err != nil {
		var zero M
		return zero, zero, zero, err
	}
	return msgs[0], msgs[1], msgs[2], nil
}

// Into4 consumes a four-message match as a quadruple.
func (mm *MatchedMessages[M]) Into4() (M, M, M, M, error) {
	msgs, err := mm.IntoK(4)
	if err != nil {
		var zero M
		return zero, zero, zero, zero, err
	}
	return msgs[0], msgs[1], msgs[2], msgs[3], nil
}

func (mm *MatchedMessages[M]) String() string {
	return fmt.Sprintf("MatchedMessages{case=%d, n=%d}", mm.caseID, len(mm.messages))
}
