package helper

import (
	"strconv"
	"strings"

	"arena_manager/collection"
	"arena_manager/logger"
	"arena_manager/model"

	"go.uber.org/zap"
)

// ArenaPredicates dựng danh sách predicate từ filter state của trang sân.
// Giá trị mặc định (rỗng) nghĩa là không ràng buộc, cho qua tất cả.
func ArenaPredicates(f *model.FilterArena) []collection.Predicate[model.Arena] {
	var preds []collection.Predicate[model.Arena]

	if key := strings.ToLower(strings.TrimSpace(f.SearchKey)); key != "" {
		preds = append(preds, func(a model.Arena) bool {
			return strings.Contains(strings.ToLower(a.Name), key) ||
				strings.Contains(strings.ToLower(a.Address), key)
		})
	}
	// tập chọn rỗng nghĩa là "không ràng buộc", không phải "không khớp gì"
	if set := toSet(f.Types); len(set) > 0 {
		preds = append(preds, func(a model.Arena) bool { return set[a.Type] })
	}
	if set := toSet(f.Statuses); len(set) > 0 {
		preds = append(preds, func(a model.Arena) bool { return set[a.Status] })
	}
	if p := priceRangePredicate(f.PriceRange); p != nil {
		preds = append(preds, p)
	}
	return preds
}

// priceRangePredicate hiểu 3 dạng token: "all", "min-max" (chặn hai đầu,
// bao gồm biên) và "min+" (không chặn trên). Token lạ coi như "all":
// UI không bao giờ sinh ra nhưng thà hiện đủ danh sách còn hơn trang chết.
func priceRangePredicate(token string) collection.Predicate[model.Arena] {
	token = strings.TrimSpace(token)
	if token == "" || token == "all" {
		return nil
	}

	if strings.HasSuffix(token, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(token, "+"), 64)
		if err != nil {
			logger.L().Warn("unknown price range token", zap.String("token", token))
			return nil
		}
		return func(a model.Arena) bool { return a.PricePerHour >= min }
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) == 2 {
		min, errMin := strconv.ParseFloat(parts[0], 64)
		max, errMax := strconv.ParseFloat(parts[1], 64)
		if errMin == nil && errMax == nil {
			return func(a model.Arena) bool {
				return a.PricePerHour >= min && a.PricePerHour <= max
			}
		}
	}

	logger.L().Warn("unknown price range token", zap.String("token", token))
	return nil
}

// MatchPriceRange cho biết một mức giá có lọt token khoảng giá không.
func MatchPriceRange(token string, price float64) bool {
	p := priceRangePredicate(token)
	if p == nil {
		return true
	}
	return p(model.Arena{PricePerHour: price})
}

// SortArenas là bước sort tuỳ chọn sau khi lọc, luôn stable.
func SortArenas(items []model.Arena, sortBy string) []model.Arena {
	switch sortBy {
	case "price_asc":
		return collection.SortStable(items, func(a, b model.Arena) bool { return a.PricePerHour < b.PricePerHour })
	case "price_desc":
		return collection.SortStable(items, func(a, b model.Arena) bool { return a.PricePerHour > b.PricePerHour })
	case "name":
		return collection.SortStable(items, func(a, b model.Arena) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	default:
		return items
	}
}

// NextSubArenaID cấp id cho sân con chưa có id: max(hiện có) + 1.
// Id sân con chỉ unique trong phạm vi sân cha.
func NextSubArenaID(subs []model.SubArena) uint {
	var max uint
	for _, s := range subs {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// AssignSubArenaIDs gán id cho các sân con backend chưa cấp id.
func AssignSubArenaIDs(subs []model.SubArena) []model.SubArena {
	out := make([]model.SubArena, len(subs))
	copy(out, subs)
	for i := range out {
		if out[i].ID == 0 {
			out[i].ID = NextSubArenaID(out)
		}
	}
	return out
}

// AppendUnique thêm chuỗi vào danh sách features/rules, bỏ trùng và bỏ rỗng.
func AppendUnique(list []string, values ...string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list)+len(values))
	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			set[v] = true
		}
	}
	return set
}
