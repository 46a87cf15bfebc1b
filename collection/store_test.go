package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCompleteLatestWins(t *testing.T) {
	s := NewStore[int]()

	first := s.Begin()
	second := s.Begin()

	// response của lượt cũ về muộn phải bị bỏ
	assert.False(t, s.Complete(first, []int{1, 2, 3}))
	assert.Equal(t, 0, s.Len())

	require.True(t, s.Complete(second, []int{9}))
	assert.Equal(t, []int{9}, s.Items())
}

func TestStoreItemsReturnsCopy(t *testing.T) {
	s := NewStore[int]()
	s.Replace([]int{1, 2})

	items := s.Items()
	items[0] = 99

	assert.Equal(t, []int{1, 2}, s.Items())
}

func TestStoreRemoveBy(t *testing.T) {
	s := NewStore[int]()
	s.Replace([]int{1, 2, 3, 2})

	removed := s.RemoveBy(func(v int) bool { return v == 2 })

	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3}, s.Items())
}

func TestStorePatchFirstMatch(t *testing.T) {
	type row struct {
		ID     int
		Status string
	}
	s := NewStore[row]()
	s.Replace([]row{{1, "pending"}, {2, "pending"}})

	ok := s.Patch(
		func(r row) bool { return r.ID == 2 },
		func(r *row) { r.Status = "approved" },
	)

	require.True(t, ok)
	assert.Equal(t, "approved", s.Items()[1].Status)
	assert.Equal(t, "pending", s.Items()[0].Status)

	assert.False(t, s.Patch(func(r row) bool { return r.ID == 9 }, func(r *row) {}))
}
