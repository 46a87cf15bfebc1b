package helper

import (
	"testing"

	"arena_manager/collection"
	"arena_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArenas() []model.Arena {
	return []model.Arena{
		{ID: 1, Name: "Sân bóng Thống Nhất", Address: "Quận 10, TP.HCM", Type: model.ArenaTypeFootball, Status: model.ArenaStatusActive, PricePerHour: 150000},
		{ID: 2, Name: "CLB Cầu lông Hòa Bình", Address: "Quận 5, TP.HCM", Type: model.ArenaTypeBadminton, Status: model.ArenaStatusMaintenance, PricePerHour: 300000},
		{ID: 3, Name: "Hồ bơi Phú Thọ", Address: "Quận 11, TP.HCM", Type: model.ArenaTypeSwimming, Status: model.ArenaStatusActive, PricePerHour: 1200000},
	}
}

func TestDefaultFilterPassesEverything(t *testing.T) {
	arenas := sampleArenas()

	got := collection.Filter(arenas, ArenaPredicates(&model.FilterArena{})...)

	assert.Equal(t, arenas, got)
}

func TestFilterIsPureAndIdempotent(t *testing.T) {
	arenas := sampleArenas()
	f := &model.FilterArena{Statuses: []string{model.ArenaStatusActive}, PriceRange: "0-200000"}

	first := collection.Filter(arenas, ArenaPredicates(f)...)
	second := collection.Filter(arenas, ArenaPredicates(f)...)

	assert.Equal(t, first, second)
}

func TestSearchMatchesNameOrAddress(t *testing.T) {
	arenas := sampleArenas()

	byName := collection.Filter(arenas, ArenaPredicates(&model.FilterArena{SearchKey: "cầu lông"})...)
	require.Len(t, byName, 1)
	assert.Equal(t, uint(2), byName[0].ID)

	byAddress := collection.Filter(arenas, ArenaPredicates(&model.FilterArena{SearchKey: "quận 11"})...)
	require.Len(t, byAddress, 1)
	assert.Equal(t, uint(3), byAddress[0].ID)
}

func TestTypeSetMembership(t *testing.T) {
	arenas := sampleArenas()
	f := &model.FilterArena{Types: []string{model.ArenaTypeFootball, model.ArenaTypeSwimming}}

	got := collection.Filter(arenas, ArenaPredicates(f)...)

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
}

func TestPriceRangeBoundariesInclusive(t *testing.T) {
	// 200000 nằm trên biên của cả hai khoảng kề nhau
	assert.True(t, MatchPriceRange("0-200000", 200000))
	assert.True(t, MatchPriceRange("200000-400000", 200000))
	assert.False(t, MatchPriceRange("1000000+", 200000))
	assert.True(t, MatchPriceRange("1000000+", 1000000))
	assert.True(t, MatchPriceRange("all", 200000))
}

func TestUnknownPriceTokenPassesThrough(t *testing.T) {
	assert.True(t, MatchPriceRange("gia-re", 999))
	assert.True(t, MatchPriceRange("abc-def", 999))
}

func TestPriceRangeScenario(t *testing.T) {
	// 3 sân giá [150000, 300000, 1200000], khoảng 200000-400000 chỉ còn 300000
	arenas := sampleArenas()
	f := &model.FilterArena{PriceRange: "200000-400000"}

	got := collection.Filter(arenas, ArenaPredicates(f)...)

	require.Len(t, got, 1)
	assert.Equal(t, float64(300000), got[0].PricePerHour)
}

func TestSortArenasStable(t *testing.T) {
	arenas := []model.Arena{
		{ID: 1, PricePerHour: 100},
		{ID: 2, PricePerHour: 100},
		{ID: 3, PricePerHour: 50},
	}

	got := SortArenas(arenas, "price_asc")

	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, uint(1), got[1].ID)
	assert.Equal(t, uint(2), got[2].ID)

	// sortBy không hợp lệ giữ nguyên thứ tự
	assert.Equal(t, arenas, SortArenas(arenas, ""))
}

func TestNextSubArenaID(t *testing.T) {
	subs := []model.SubArena{{ID: 1}, {ID: 7}, {ID: 3}}
	assert.Equal(t, uint(8), NextSubArenaID(subs))
	assert.Equal(t, uint(1), NextSubArenaID(nil))
}

func TestAssignSubArenaIDs(t *testing.T) {
	subs := []model.SubArena{
		{ID: 2, Name: "Sân A"},
		{ID: 0, Name: "Sân B"},
		{ID: 0, Name: "Sân C"},
	}

	got := AssignSubArenaIDs(subs)

	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
	assert.Equal(t, uint(4), got[2].ID)
	// input không bị sửa tại chỗ
	assert.Equal(t, uint(0), subs[1].ID)
}

func TestAppendUniqueDedupes(t *testing.T) {
	got := AppendUnique([]string{"wifi", "parking"}, "parking", "wifi", "shower", "", "shower")

	assert.Equal(t, []string{"wifi", "parking", "shower"}, got)
}
