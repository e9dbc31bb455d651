// Package position ranks active entries by arrival order.
//
// Positions are a view over the current set of entries in a scope. They are
// recomputed on every read and never stored.
package position

import (
	"sort"
	"time"
)

// Entry is anything that can be ranked inside a scope.
type Entry interface {
	// RankKey returns the arrival timestamp and a stable insertion-order
	// tie-breaker. Together they must be unique within a scope.
	RankKey() (time.Time, uint)
	IsActive() bool
}

type Ranked[T Entry] struct {
	Item     T
	Position int
}

// Rank returns active items first, ranked 1..N by (createdAt, id), followed by
// inactive items with position 0 in their input order.
func Rank[T Entry](items []T) []Ranked[T] {
	active := make([]T, 0, len(items))
	var rest []T
	for _, it := range items {
		if it.IsActive() {
			active = append(active, it)
		} else {
			rest = append(rest, it)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return before(active[i], active[j])
	})

	out := make([]Ranked[T], 0, len(items))
	for i, it := range active {
		out = append(out, Ranked[T]{Item: it, Position: i + 1})
	}
	for _, it := range rest {
		out = append(out, Ranked[T]{Item: it, Position: 0})
	}
	return out
}

// Of returns the position of the entry with the given id. The second result
// is false when no entry in items carries that id.
func Of[T Entry](items []T, id uint) (int, bool) {
	var target T
	found := false
	for _, it := range items {
		if _, itID := it.RankKey(); itID == id {
			target = it
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}
	if !target.IsActive() {
		return 0, true
	}

	pos := 1
	for _, it := range items {
		if it.IsActive() && before(it, target) {
			pos++
		}
	}
	return pos, true
}

// Index maps ids to their positions for a single pass over a scope.
func Index[T Entry](items []T) map[uint]int {
	ranked := Rank(items)
	out := make(map[uint]int, len(ranked))
	for _, r := range ranked {
		_, id := r.Item.RankKey()
		out[id] = r.Position
	}
	return out
}

func before[T Entry](a, b T) bool {
	at, aid := a.RankKey()
	bt, bid := b.RankKey()
	if !at.Equal(bt) {
		return at.Before(bt)
	}
	return aid < bid
}
