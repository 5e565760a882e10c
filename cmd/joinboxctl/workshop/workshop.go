// Package workshop is a concrete instantiation of the matching engine over
// the two-case "faults and fixes" pattern used as this module's worked
// example: Case 0 pairs a Fault with a Fix sharing its id; Case 1 takes two
// Faults and a Fix, where the second Fault's ts is more than 10 ticks after
// the first's and its id equals the Fix's. When both cases complete on the
// same arrival, the one whose sorted ids are older wins.
package workshop

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/log"

	"github.com/openalpha/joinbox/matching/keeper"
	"github.com/openalpha/joinbox/matching/types"
)

// Event is one workshop message: either a Fault (Kind == "fault", with a Ts)
// or a Fix (Kind == "fix", Ts unused).
type Event struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
	Ts   int    `json:"ts"`
}

func (e Event) String() string {
	if e.Kind == "fault" {
		return fmt.Sprintf("Fault(%d,%d)", e.ID, e.Ts)
	}
	return fmt.Sprintf("Fix(%d)", e.ID)
}

func orderedFrom(msgs []Event, mapping types.Mapping) []Event {
	out := make([]Event, len(mapping))
	for i, slot := range mapping {
		out[i] = msgs[slot]
	}
	return out
}

func pairCase() *types.CaseArtifact[Event] {
	accept := func(m Event) bool { return m.Kind == "fault" || m.Kind == "fix" }
	groupOf := func(m Event) int {
		if m.Kind == "fault" {
			return 0
		}
		return 1
	}
	guard := func(msgs []Event, mapping types.Mapping) bool {
		ordered := orderedFrom(msgs, mapping)
		if ordered[0].Kind != "fault" || ordered[1].Kind != "fix" {
			return false
		}
		return ordered[0].ID == ordered[1].ID
	}
	return types.NewCaseArtifact[Event](2, types.GroupSizes{1, 1}, []int{0, 1}, accept, groupOf, guard)
}

func doubleFaultCase() *types.CaseArtifact[Event] {
	accept := func(m Event) bool { return m.Kind == "fault" || m.Kind == "fix" }
	groupOf := func(m Event) int {
		if m.Kind == "fault" {
			return 0
		}
		return 1
	}
	guard := func(msgs []Event, mapping types.Mapping) bool {
		ordered := orderedFrom(msgs, mapping)
		if ordered[0].Kind != "fault" || ordered[1].Kind != "fault" || ordered[2].Kind != "fix" {
			return false
		}
		a, b, c := ordered[0], ordered[1], ordered[2]
		return b.ID == c.ID && b.Ts > a.Ts+10
	}
	return types.NewCaseArtifact[Event](3, types.GroupSizes{2, 1}, []int{0, 0, 1}, accept, groupOf, guard)
}

// NewMailBox builds and initializes the workshop mailbox, with Case 0 (pair)
// and Case 1 (double-fault) registered in that declaration order.
func NewMailBox(logger log.Logger) (*keeper.MailBox[Event], error) {
	mb := keeper.NewMailBox[Event]("workshop", logger)
	if err := mb.AddCase(keeper.NewStatefulTreeMatcher(pairCase())); err != nil {
		return nil, err
	}
	if err := mb.AddCase(keeper.NewStatefulTreeMatcher(doubleFaultCase())); err != nil {
		return nil, err
	}
	if err := mb.Init(); err != nil {
		return nil, err
	}
	return mb, nil
}

// LoadFixture reads a JSON array of Events from path.
func LoadFixture(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return events, nil
}

// Firing is one winning match, reported for display.
type Firing struct {
	Case     types.CaseID
	Messages []Event
}

// Run drives every event in fixture through a fresh workshop mailbox and
// returns every firing, in the order it occurred.
func Run(logger log.Logger, fixture []Event) ([]Firing, error) {
	mb, err := NewMailBox(logger)
	if err != nil {
		return nil, err
	}

	var firings []Firing
	for _, evt := range fixture {
		m, err := mb.Process(evt)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		msgs, err := m.IntoK(m.Len())
		if err != nil {
			return nil, err
		}
		firings = append(firings, Firing{Case: m.CaseID(), Messages: msgs})
	}
	return firings, nil
}
