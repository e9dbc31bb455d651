package position

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntry struct {
	id      uint
	at      time.Time
	pending bool
}

func (f fakeEntry) RankKey() (time.Time, uint) { return f.at, f.id }
func (f fakeEntry) IsActive() bool             { return f.pending }

var base = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func at(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

func TestRank_StrictlyIncreasingTimestamps(t *testing.T) {
	const n = 25
	items := make([]fakeEntry, 0, n*2)
	for i := 0; i < n; i++ {
		items = append(items, fakeEntry{id: uint(i + 1), at: at(i), pending: true})
		items = append(items, fakeEntry{id: uint(100 + i), at: at(i), pending: false})
	}
	rnd := rand.New(rand.NewSource(7))
	rnd.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	ranked := Rank(items)
	require.Len(t, ranked, len(items))

	for i := 0; i < n; i++ {
		assert.Equal(t, i+1, ranked[i].Position)
		assert.Equal(t, uint(i+1), ranked[i].Item.id)
	}
	for _, r := range ranked[n:] {
		assert.Equal(t, 0, r.Position)
		assert.False(t, r.Item.pending)
	}
}

func TestRank_InactiveKeepInputOrder(t *testing.T) {
	items := []fakeEntry{
		{id: 9, at: at(5), pending: false},
		{id: 2, at: at(1), pending: true},
		{id: 4, at: at(0), pending: false},
	}

	ranked := Rank(items)

	assert.Equal(t, uint(2), ranked[0].Item.id)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, uint(9), ranked[1].Item.id)
	assert.Equal(t, uint(4), ranked[2].Item.id)
}

func TestRank_TiesBrokenByID(t *testing.T) {
	items := []fakeEntry{
		{id: 3, at: at(0), pending: true},
		{id: 1, at: at(0), pending: true},
		{id: 2, at: at(0), pending: true},
	}

	ranked := Rank(items)

	for i, r := range ranked {
		assert.Equal(t, uint(i+1), r.Item.id)
		assert.Equal(t, i+1, r.Position)
	}
}

func TestRank_Idempotent(t *testing.T) {
	items := []fakeEntry{
		{id: 1, at: at(3), pending: true},
		{id: 2, at: at(1), pending: true},
		{id: 3, at: at(2), pending: false},
	}

	assert.Equal(t, Rank(items), Rank(items))
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank([]fakeEntry{}))
}

func TestOf(t *testing.T) {
	items := []fakeEntry{
		{id: 1, at: at(0), pending: true},
		{id: 2, at: at(1), pending: false},
		{id: 3, at: at(2), pending: true},
	}

	pos, ok := Of(items, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = Of(items, 2)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = Of(items, 99)
	assert.False(t, ok)
}

func TestIndex_MatchesRank(t *testing.T) {
	items := []fakeEntry{
		{id: 10, at: at(2), pending: true},
		{id: 11, at: at(1), pending: true},
		{id: 12, at: at(0), pending: false},
	}

	idx := Index(items)

	assert.Equal(t, map[uint]int{10: 2, 11: 1, 12: 0}, idx)
	for _, it := range items {
		pos, _ := Of(items, it.id)
		assert.Equal(t, idx[it.id], pos)
	}
}
