package types

import "testing"

func TestApplyMapping(t *testing.T) {
	storageOrder := []MessageID{10, 20, 30}
	mapping := Mapping{2, 0, 1}

	got := ApplyMapping(storageOrder, mapping)
	want := MatchedIDs{30, 10, 20}

	if len(got) != len(want) {
		t.Fatalf("ApplyMapping length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ApplyMapping[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSortedPadsWithMax(t *testing.T) {
	got := Sorted(MatchedIDs{5, 1}, 3)
	want := MatchedIDsSorted{1, 5, MaxMessageID}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMatchedIDsSortedLess(t *testing.T) {
	cases := []struct {
		name string
		a, b MatchedIDsSorted
		want bool
	}{
		{"strictly smaller first element", MatchedIDsSorted{1, 2, 5}, MatchedIDsSorted{4, 5, MaxMessageID}, true},
		{"equal keys", MatchedIDsSorted{1, 2}, MatchedIDsSorted{1, 2}, false},
		{"strictly larger", MatchedIDsSorted{4, 5}, MatchedIDsSorted{1, 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("Less() = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestFairestIndex_SizeVsAge exercises spec scenario S4: a longer match
// whose oldest ids are older than a shorter match's wins, because padding
// makes the shorter key's unused slots compare "infinitely in the future".
func TestFairestIndex_SizeVsAge(t *testing.T) {
	matches := []CaseMatch{
		{Case: 0, IDs: MatchedIDs{4, 5}},
		{Case: 1, IDs: MatchedIDs{1, 2, 5}},
	}
	idx := FairestIndex(matches, 3)
	if idx != 1 {
		t.Errorf("FairestIndex() = %d, want 1 (case 1's [1,2,5] beats case 0's [4,5,MAX])", idx)
	}
}

func TestFairestIndex_TieBreaksOnCaseID(t *testing.T) {
	matches := []CaseMatch{
		{Case: 1, IDs: MatchedIDs{1, 2}},
		{Case: 0, IDs: MatchedIDs{1, 2}},
	}
	idx := FairestIndex(matches, 2)
	if matches[idx].Case != 0 {
		t.Errorf("FairestIndex() selected case %d, want case 0 on a tie", matches[idx].Case)
	}
}
