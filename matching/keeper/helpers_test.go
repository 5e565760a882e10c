package keeper

import "github.com/openalpha/joinbox/matching/types"

// evt is the message type shared by every scenario test below: a tagged
// union of two workshop events, modeled the only way Go allows without sum
// types — a Kind discriminant plus every variant's fields flattened onto one
// struct.
type evt struct {
	Kind string // "Fault" or "Fix"
	ID   int
	Ts   int
}

func fault(id, ts int) evt { return evt{Kind: "Fault", ID: id, Ts: ts} }
func fix(id int) evt       { return evt{Kind: "Fix", ID: id} }

// orderedFrom reorders msgs (in storage-slot order) into pattern-position
// order via mapping: ordered[i] = msgs[mapping[i]].
func orderedFrom(msgs []evt, mapping types.Mapping) []evt {
	out := make([]evt, len(mapping))
	for i, slot := range mapping {
		out[i] = msgs[slot]
	}
	return out
}

// faultFixCase builds case 0 from the workshop scenario: (Fault{id:f1},
// Fix{id:f2}) with guard f1 == f2.
func faultFixCase() *types.CaseArtifact[evt] {
	accept := func(m evt) bool { return m.Kind == "Fault" || m.Kind == "Fix" }
	groupOf := func(m evt) int {
		if m.Kind == "Fault" {
			return 0
		}
		return 1
	}
	guard := func(msgs []evt, mapping types.Mapping) bool {
		ordered := orderedFrom(msgs, mapping)
		if ordered[0].Kind != "Fault" || ordered[1].Kind != "Fix" {
			return false
		}
		return ordered[0].ID == ordered[1].ID
	}
	return types.NewCaseArtifact[evt](2, types.GroupSizes{1, 1}, []int{0, 1}, accept, groupOf, guard)
}

// doubleFaultThenFixCase builds case 1 from the workshop scenario:
// (Fault{id:a,ts:t1}, Fault{id:b,ts:t2}, Fix{id:c}) with guard
// b == c && t2 > t1 + 10.
func doubleFaultThenFixCase() *types.CaseArtifact[evt] {
	accept := func(m evt) bool { return m.Kind == "Fault" || m.Kind == "Fix" }
	groupOf := func(m evt) int {
		if m.Kind == "Fault" {
			return 0
		}
		return 1
	}
	guard := func(msgs []evt, mapping types.Mapping) bool {
		ordered := orderedFrom(msgs, mapping)
		if ordered[0].Kind != "Fault" || ordered[1].Kind != "Fault" || ordered[2].Kind != "Fix" {
			return false
		}
		a, b, c := ordered[0], ordered[1], ordered[2]
		return b.ID == c.ID && b.Ts > a.Ts+10
	}
	return types.NewCaseArtifact[evt](3, types.GroupSizes{2, 1}, []int{0, 0, 1}, accept, groupOf, guard)
}

// pairCase builds the S2/S3-shaped case (A(x), B(y)) with guard fn. A and B
// are modeled as evt with Kind "A"/"B"; x, y read off ID.
func pairCase(guardFn func(x, y int) bool) *types.CaseArtifact[evt] {
	accept := func(m evt) bool { return m.Kind == "A" || m.Kind == "B" }
	groupOf := func(m evt) int {
		if m.Kind == "A" {
			return 0
		}
		return 1
	}
	guard := func(msgs []evt, mapping types.Mapping) bool {
		ordered := orderedFrom(msgs, mapping)
		if ordered[0].Kind != "A" || ordered[1].Kind != "B" {
			return false
		}
		return guardFn(ordered[0].ID, ordered[1].ID)
	}
	return types.NewCaseArtifact[evt](2, types.GroupSizes{1, 1}, []int{0, 1}, accept, groupOf, guard)
}

func a(id int) evt { return evt{Kind: "A", ID: id} }
func b(id int) evt { return evt{Kind: "B", ID: id} }
