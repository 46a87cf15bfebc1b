package helper

import (
	"math"
	"strings"

	"arena_manager/collection"
	"arena_manager/model"
	"arena_manager/utils"
)

// FeedbackPredicates: search quét tên/username/email người gửi, nội dung
// và phản hồi; snapshot user thiếu thì coi như không khớp, không panic.
func FeedbackPredicates(f *model.FilterFeedback) []collection.Predicate[model.Feedback] {
	var preds []collection.Predicate[model.Feedback]

	if key := strings.ToLower(strings.TrimSpace(f.SearchKey)); key != "" {
		preds = append(preds, func(fb model.Feedback) bool {
			if strings.Contains(strings.ToLower(fb.Comment), key) {
				return true
			}
			if fb.Response != nil && strings.Contains(strings.ToLower(*fb.Response), key) {
				return true
			}
			if fb.User == nil {
				return false
			}
			return strings.Contains(strings.ToLower(fb.User.Name), key) ||
				strings.Contains(strings.ToLower(fb.User.Username), key) ||
				strings.Contains(strings.ToLower(fb.User.Email), key)
		})
	}
	if status := strings.TrimSpace(f.Status); status != "" && status != "all" {
		preds = append(preds, func(fb model.Feedback) bool { return fb.Status == status })
	}
	if f.Rating >= 1 && f.Rating <= 5 {
		preds = append(preds, func(fb model.Feedback) bool { return fb.Rating == f.Rating })
	}
	if p := dateRangePredicate(f.DateFrom, f.DateTo, func(fb model.Feedback) int64 {
		return fb.CreatedAt.UnixNano()
	}); p != nil {
		preds = append(preds, p)
	}
	return preds
}

// dateRangePredicate: created_at >= đầu ngày dateFrom và <= hết ngày dateTo
// (23:59:59.999 của chính ngày đó, không phải nửa đêm).
func dateRangePredicate[T any](dateFrom, dateTo string, at func(T) int64) collection.Predicate[T] {
	var fromNs, toNs int64
	hasFrom, hasTo := false, false

	if dateFrom != "" {
		if t, err := utils.ParseDateOnly(dateFrom); err == nil {
			fromNs = utils.StartOfDay(t).UnixNano()
			hasFrom = true
		}
	}
	if dateTo != "" {
		if t, err := utils.ParseDateOnly(dateTo); err == nil {
			toNs = utils.EndOfDay(t).UnixNano()
			hasTo = true
		}
	}
	if !hasFrom && !hasTo {
		return nil
	}
	return func(item T) bool {
		ns := at(item)
		if hasFrom && ns < fromNs {
			return false
		}
		if hasTo && ns > toNs {
			return false
		}
		return true
	}
}

// ComputeFeedbackStats là đường tính phía client khi endpoint stats
// không dùng được: reduce trực tiếp trên collection hiện có.
func ComputeFeedbackStats(items []model.Feedback) model.FeedbackStats {
	stats := model.FeedbackStats{Total: int64(len(items))}
	if len(items) == 0 {
		// collection rỗng thì mọi số liệu là 0, không bao giờ NaN
		return stats
	}
	sum := 0
	for _, fb := range items {
		sum += fb.Rating
		switch fb.Status {
		case model.FeedbackStatusPending:
			stats.Pending++
		case model.FeedbackStatusApproved:
			stats.Approved++
		case model.FeedbackStatusRejected:
			stats.Rejected++
		}
	}
	avg := float64(sum) / float64(len(items))
	stats.AverageRating = math.Round(avg*10) / 10
	return stats
}

// CoalesceFeedbackStats tin số liệu backend trả về, chỉ đảm bảo không âm.
func CoalesceFeedbackStats(stats *model.FeedbackStats) model.FeedbackStats {
	if stats == nil {
		return model.FeedbackStats{}
	}
	out := *stats
	if out.AverageRating < 0 || math.IsNaN(out.AverageRating) {
		out.AverageRating = 0
	}
	return out
}

// CanTransitFeedback: pending → approved | rejected. Hai trạng thái sau
// là terminal trên dashboard, không có đường quay về pending.
func CanTransitFeedback(from, to string) bool {
	if from != model.FeedbackStatusPending {
		return false
	}
	return to == model.FeedbackStatusApproved || to == model.FeedbackStatusRejected
}
