package types

import "testing"

func TestAllPermutationsCount(t *testing.T) {
	for size := 1; size <= 4; size++ {
		perms := AllPermutations(size)
		want := factorial(size)
		if len(perms) != want {
			t.Errorf("AllPermutations(%d) has %d entries, want %d", size, len(perms), want)
		}
	}
}

func TestAllPermutationsAreDistinctBijections(t *testing.T) {
	perms := AllPermutations(3)
	seen := make(map[string]bool)
	for _, p := range perms {
		seen[mappingKey(p)] = true
		present := make([]bool, 3)
		for _, slot := range p {
			present[slot] = true
		}
		for _, ok := range present {
			if !ok {
				t.Fatalf("permutation %v is not a bijection over {0,1,2}", p)
			}
		}
	}
	if len(seen) != factorial(3) {
		t.Errorf("found %d distinct permutations, want %d", len(seen), factorial(3))
	}
}

// TestEnumerateLegalMappingsRespectsGroups exercises the S1-shaped case:
// two singleton groups (distinct sub-pattern shapes) admit only the identity
// mapping, since no other bijection keeps each position within its own
// group's (single-slot) range.
func TestEnumerateLegalMappingsRespectsGroups(t *testing.T) {
	artifact := NewCaseArtifact[int](2, GroupSizes{1, 1}, []int{0, 1},
		func(int) bool { return true },
		func(m int) int { return m },
		func([]int, Mapping) bool { return true },
	)
	if len(artifact.Mappings) != 1 {
		t.Fatalf("len(Mappings) = %d, want 1", len(artifact.Mappings))
	}
	want := Mapping{0, 1}
	for i := range want {
		if artifact.Mappings[0][i] != want[i] {
			t.Errorf("Mappings[0] = %v, want %v", artifact.Mappings[0], want)
		}
	}
}

// TestEnumerateLegalMappingsWithinGroup exercises a case whose two pattern
// positions share a single group of size 2 (the S2/S3-shaped "pairs" case
// has no shared group, but a group of size 2 arises whenever two sub-patterns
// have identical shape, e.g. the two Fault positions in S1's case 1): both
// bijections of the group's slot range to the group's two positions are
// legal.
func TestEnumerateLegalMappingsWithinGroup(t *testing.T) {
	artifact := NewCaseArtifact[int](2, GroupSizes{2}, []int{0, 0},
		func(int) bool { return true },
		func(m int) int { return 0 },
		func([]int, Mapping) bool { return true },
	)
	if len(artifact.Mappings) != 2 {
		t.Fatalf("len(Mappings) = %d, want 2", len(artifact.Mappings))
	}
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

func mappingKey(m Mapping) string {
	b := make([]byte, len(m))
	for i, v := range m {
		b[i] = byte('0' + v)
	}
	return string(b)
}
