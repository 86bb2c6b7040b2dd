// Package leaderboard keeps a bounded, ranked list of recent game results.
package leaderboard

import "slices"

// DefaultSize is the number of entries kept when no size is given.
const DefaultSize = 5

// Entry is a single ranked result.
type Entry struct {
	Name  string
	Score int
}

// Board ranks entries by score, highest first. Entries with equal scores keep
// the order they were recorded in. It is not safe for concurrent use.
type Board struct {
	size    int
	entries []Entry
}

// New creates a board that keeps at most size entries.
// A size below 1 selects DefaultSize.
func New(size int) *Board {
	if size < 1 {
		size = DefaultSize
	}
	return &Board{
		size:    size,
		entries: make([]Entry, 0, size+1),
	}
}

// Record inserts a result, re-ranks and drops everything past the board size.
// It reports whether the new entry made it onto the board.
func (b *Board) Record(name string, score int) bool {
	// A stable sort places the newcomer after every entry scoring at least as
	// much, so its rank is known before sorting.
	rank := 0
	for _, e := range b.entries {
		if e.Score >= score {
			rank++
		}
	}

	b.entries = append(b.entries, Entry{Name: name, Score: score})
	slices.SortStableFunc(b.entries, func(x, y Entry) int {
		return y.Score - x.Score
	})
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
	return rank < b.size
}

// Entries returns a copy of the ranked entries.
func (b *Board) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Len returns the number of entries on the board.
func (b *Board) Len() int {
	return len(b.entries)
}

// Size returns the board capacity.
func (b *Board) Size() int {
	return b.size
}

// Best returns the top entry, if any.
func (b *Board) Best() (Entry, bool) {
	if len(b.entries) == 0 {
		return Entry{}, false
	}
	return b.entries[0], true
}
