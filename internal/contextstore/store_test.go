package contextstore

import (
	"fmt"
	"testing"

	"github.com/vanihq/vani/internal/language"
)

func TestAppendTurnNeverExceedsCapacity(t *testing.T) {
	s := New(3, 5)
	for i := 0; i < 50; i++ {
		s.AppendTurn(Turn{Speaker: "user", Text: fmt.Sprintf("turn %d", i), Language: language.English})
		if s.Len() > 3 {
			t.Fatalf("len = %d after %d appends, capacity 3", s.Len(), i+1)
		}
	}

	turns := s.RecentTurns(0)
	if len(turns) != 3 {
		t.Fatalf("RecentTurns len = %d, want 3", len(turns))
	}
	// Oldest evicted first: the survivors are the last three appended.
	if turns[0].Text != "turn 47" || turns[2].Text != "turn 49" {
		t.Fatalf("unexpected survivors: %q .. %q", turns[0].Text, turns[2].Text)
	}
}

func TestRecentTurnsLimit(t *testing.T) {
	s := New(10, 5)
	for i := 0; i < 6; i++ {
		s.AppendTurn(Turn{Speaker: "user", Text: fmt.Sprintf("t%d", i)})
	}
	got := s.RecentTurns(2)
	if len(got) != 2 || got[0].Text != "t4" || got[1].Text != "t5" {
		t.Fatalf("RecentTurns(2) = %+v", got)
	}
}

func TestVisionStalenessByTurns(t *testing.T) {
	s := New(10, 2)
	s.SetVision("a red clock on the wall")

	if _, ok := s.Vision(); !ok {
		t.Fatalf("vision should be present right after SetVision")
	}

	s.AppendTurn(Turn{Speaker: "user", Text: "one"})
	s.AppendTurn(Turn{Speaker: "user", Text: "two"})
	if v, ok := s.Vision(); !ok || v.Description != "a red clock on the wall" {
		t.Fatalf("vision should survive %d turns", 2)
	}

	s.AppendTurn(Turn{Speaker: "user", Text: "three"})
	if _, ok := s.Vision(); ok {
		t.Fatalf("vision should be stale after threshold is exceeded")
	}
}

func TestVisionRefreshRestartsStalenessWindow(t *testing.T) {
	s := New(10, 1)
	s.SetVision("first")
	s.AppendTurn(Turn{Speaker: "user", Text: "x"})
	s.SetVision("second")
	s.AppendTurn(Turn{Speaker: "user", Text: "y"})
	if v, ok := s.Vision(); !ok || v.Description != "second" {
		t.Fatalf("refreshed vision should still be live, got %+v ok=%v", v, ok)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := New(5, 5)
	s.AppendTurn(Turn{Speaker: "user", Text: "hello"})
	s.SetVision("a desk")
	s.SetSearch("chai", "a spiced tea", "wikipedia")

	s.Reset()

	for _, n := range []int{0, 1, 10} {
		if got := s.RecentTurns(n); len(got) != 0 {
			t.Fatalf("RecentTurns(%d) after reset = %d entries", n, len(got))
		}
	}
	if _, ok := s.Vision(); ok {
		t.Fatalf("vision should be absent after reset")
	}
	if _, ok := s.Search(); ok {
		t.Fatalf("search should be absent after reset")
	}
}

func TestSearchContextRoundTrip(t *testing.T) {
	s := New(5, 5)
	if _, ok := s.Search(); ok {
		t.Fatalf("search should start absent")
	}
	s.SetSearch("monsoon", "heavy rain expected", "duckduckgo")
	got, ok := s.Search()
	if !ok || got.Query != "monsoon" || got.Source != "duckduckgo" {
		t.Fatalf("Search() = %+v ok=%v", got, ok)
	}
}
