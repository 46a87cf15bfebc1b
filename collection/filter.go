// Package collection gom logic danh sách dùng chung cho các trang
// Arena/Feedback/Payment: lọc thuần theo predicate, sắp xếp ổn định
// và store trong bộ nhớ cho một lần xem trang.
package collection

import "sort"

// Predicate quyết định một phần tử có nằm trong kết quả lọc hay không.
type Predicate[T any] func(T) bool

// Filter áp dụng AND tất cả predicate, giữ nguyên thứ tự ban đầu.
// Kết quả chỉ phụ thuộc input, gọi lại bao nhiêu lần cũng ra y hệt.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if pred == nil {
				continue
			}
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// SortStable trả về bản sao đã sắp xếp; phần tử bằng khoá giữ nguyên
// thứ tự tương đối trước đó.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// Paginate cắt trang trên kết quả đã lọc. page tính từ 1.
func Paginate[T any](items []T, limit, page int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
