package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID    int
	Group string
	Score int
}

func TestFilterKeepsOrder(t *testing.T) {
	items := []item{{ID: 3}, {ID: 1}, {ID: 2}}

	got := Filter(items, func(i item) bool { return i.ID != 1 })

	assert.Equal(t, []item{{ID: 3}, {ID: 2}}, got)
}

func TestFilterNoPredicatesPassesEverything(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}}

	got := Filter(items)

	assert.Equal(t, items, got)
}

func TestFilterComposesWithAND(t *testing.T) {
	items := []item{
		{ID: 1, Group: "a", Score: 10},
		{ID: 2, Group: "a", Score: 3},
		{ID: 3, Group: "b", Score: 10},
	}

	got := Filter(items,
		func(i item) bool { return i.Group == "a" },
		func(i item) bool { return i.Score >= 5 },
	)

	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterIsIdempotent(t *testing.T) {
	items := []item{{ID: 1, Score: 5}, {ID: 2, Score: 7}, {ID: 3, Score: 2}}
	pred := func(i item) bool { return i.Score > 3 }

	first := Filter(items, pred)
	second := Filter(items, pred)

	assert.Equal(t, first, second)
}

func TestFilterNilPredicateSkipped(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}}

	got := Filter(items, nil, func(i item) bool { return i.ID == 2 })

	assert.Equal(t, []item{{ID: 2}}, got)
}

func TestSortStableKeepsEqualKeysInOrder(t *testing.T) {
	items := []item{
		{ID: 1, Score: 5},
		{ID: 2, Score: 5},
		{ID: 3, Score: 1},
		{ID: 4, Score: 5},
	}

	got := SortStable(items, func(a, b item) bool { return a.Score < b.Score })

	assert.Equal(t, 3, got[0].ID)
	// các phần tử cùng Score giữ nguyên thứ tự 1, 2, 4
	assert.Equal(t, []int{got[1].ID, got[2].ID, got[3].ID}, []int{1, 2, 4})
	// bản gốc không bị xáo
	assert.Equal(t, 1, items[0].ID)
}

func TestPaginate(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	assert.Len(t, Paginate(items, 2, 1), 2)
	assert.Equal(t, 3, Paginate(items, 2, 2)[0].ID)
	assert.Len(t, Paginate(items, 2, 3), 1)
	assert.Empty(t, Paginate(items, 2, 4))
	assert.Len(t, Paginate(items, 0, 1), 5)
}
