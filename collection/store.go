package collection

import (
	"sync"

	"github.com/google/uuid"
)

// Store giữ collection đã fetch gần nhất trong bộ nhớ.
// Mỗi lượt refresh cấp một token; response về muộn hơn lượt refresh
// mới nhất thì bị bỏ, không ghi đè dữ liệu mới bằng dữ liệu cũ.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	token string
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Begin đánh dấu một lượt refresh mới và trả về token của lượt đó.
func (s *Store[T]) Begin() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = uuid.NewString()
	return s.token
}

// Complete ghi kết quả nếu token vẫn là lượt mới nhất.
// Trả về false khi response đã bị lượt khác vượt qua.
func (s *Store[T]) Complete(token string, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	s.items = items
	return true
}

// Replace ghi thẳng không qua token (dùng cho reconcile sau mutation).
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// RemoveBy xoá mọi phần tử khớp match, trả về số phần tử đã xoá.
func (s *Store[T]) RemoveBy(match func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed
}

// Patch sửa tại chỗ phần tử đầu tiên khớp match.
func (s *Store[T]) Patch(match func(T) bool, apply func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if match(s.items[i]) {
			apply(&s.items[i])
			return true
		}
	}
	return false
}
