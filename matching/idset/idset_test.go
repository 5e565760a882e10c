package idset

import (
	"testing"

	"github.com/openalpha/joinbox/matching/types"
)

func TestSetAscendingOrder(t *testing.T) {
	s := New()
	for _, id := range []types.MessageID{5, 1, 3, 2, 4} {
		s.Insert(id)
	}
	got := s.Slice()
	want := []types.MessageID{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Slice() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetRemove(t *testing.T) {
	s := New()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(2)

	if s.Contains(2) {
		t.Error("Contains(2) = true after Remove(2)")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	want := []types.MessageID{1, 3}
	got := s.Slice()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetInsertIdempotent(t *testing.T) {
	s := New()
	s.Insert(7)
	s.Insert(7)
	if s.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Insert, want 1", s.Len())
	}
}
