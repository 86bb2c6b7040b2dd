package leaderboard

import (
	"slices"
	"testing"
)

func scores(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestRecordKeepsTopFive(t *testing.T) {
	b := New(5)
	for _, s := range []int{3, 7, 1, 9, 5, 2} {
		b.Record("Player", s)
	}

	got := scores(b.Entries())
	expected := []int{9, 7, 5, 3, 2}
	if !slices.Equal(got, expected) {
		t.Errorf("Entries() = %v, expected %v", got, expected)
	}
}

func TestRecordLowScoreDoesNotDisplace(t *testing.T) {
	b := New(5)
	for _, s := range []int{10, 20, 30, 40, 50} {
		if !b.Record("P", s) {
			t.Fatalf("Record(%d) should fit on a board that is not full", s)
		}
	}

	if b.Record("late", 5) {
		t.Error("Record(5) should report that it fell off the board")
	}

	got := scores(b.Entries())
	expected := []int{50, 40, 30, 20, 10}
	if !slices.Equal(got, expected) {
		t.Errorf("Entries() = %v, expected %v", got, expected)
	}
}

func TestRecordStableTies(t *testing.T) {
	b := New(3)
	b.Record("first", 4)
	b.Record("second", 4)
	b.Record("third", 4)

	// A fourth equal score ranks after every earlier one and falls off.
	if b.Record("fourth", 4) {
		t.Error("tie at full capacity should not displace earlier entries")
	}

	names := make([]string, 0, b.Len())
	for _, e := range b.Entries() {
		names = append(names, e.Name)
	}
	expected := []string{"first", "second", "third"}
	if !slices.Equal(names, expected) {
		t.Errorf("names = %v, expected %v", names, expected)
	}
}

func TestRecordHigherScoreEvictsLowest(t *testing.T) {
	b := New(2)
	b.Record("a", 1)
	b.Record("b", 2)
	if !b.Record("c", 3) {
		t.Error("Record(3) should make the board")
	}

	got := scores(b.Entries())
	if !slices.Equal(got, []int{3, 2}) {
		t.Errorf("Entries() = %v, expected [3 2]", got)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	b := New(5)
	b.Record("a", 1)

	entries := b.Entries()
	entries[0].Score = 100

	if best, _ := b.Best(); best.Score != 1 {
		t.Errorf("mutating Entries() result changed the board: %+v", best)
	}
}

func TestNewDefaultSize(t *testing.T) {
	if New(0).Size() != DefaultSize {
		t.Errorf("New(0).Size() = %d, expected %d", New(0).Size(), DefaultSize)
	}
	if _, ok := New(3).Best(); ok {
		t.Error("Best() on empty board should report false")
	}
}
