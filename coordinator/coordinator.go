// Package coordinator thực hiện ghi lên gateway rồi reconcile store cục bộ.
// Quy tắc chung: refetch sau khi ghi; chỉ patch tại chỗ khi refetch
// thất bại mà kết quả ghi đã biết chắc (gán trạng thái).
package coordinator

import (
	"context"
	"sync"

	"arena_manager/collection"
	"arena_manager/model"

	"go.uber.org/zap"
)

type Coordinator[T any] struct {
	store *collection.Store[T]
	fetch func(context.Context) ([]T, error)
	log   *zap.Logger
}

func New[T any](store *collection.Store[T], fetch func(context.Context) ([]T, error), log *zap.Logger) *Coordinator[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator[T]{store: store, fetch: fetch, log: log}
}

func (c *Coordinator[T]) Store() *collection.Store[T] {
	return c.store
}

// Refresh fetch toàn bộ collection; response cũ hơn lượt mới nhất bị bỏ qua.
func (c *Coordinator[T]) Refresh(ctx context.Context) ([]T, error) {
	token := c.store.Begin()
	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !c.store.Complete(token, items) {
		c.log.Debug("stale refresh discarded")
		return c.store.Items(), nil
	}
	return c.store.Items(), nil
}

// Update ghi một thay đổi rồi refetch. Ghi lỗi thì store giữ nguyên.
// Refetch lỗi thì áp patch đã biết chắc lên bản cục bộ.
func (c *Coordinator[T]) Update(ctx context.Context, write func(context.Context) error, match func(T) bool, patch func(*T)) ([]T, error) {
	if err := write(ctx); err != nil {
		return nil, err
	}
	items, err := c.Refresh(ctx)
	if err == nil {
		return items, nil
	}
	c.log.Warn("refetch after update failed, patching local copy", zap.Error(err))
	if match != nil && patch != nil {
		c.store.Patch(match, patch)
	}
	return c.store.Items(), nil
}

// BulkUpdate bắn từng request độc lập, đợi tất cả xong rồi mới refetch.
// Không all-or-nothing: báo riêng số thành công và số thất bại.
func (c *Coordinator[T]) BulkUpdate(ctx context.Context, ids []uint, write func(context.Context, uint) error) (model.BulkResult, []T, error) {
	result := model.BulkResult{Errors: map[uint]string{}}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, id := range ids {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			err := write(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors[id] = err.Error()
				c.log.Warn("bulk item failed", zap.Uint("id", id), zap.Error(err))
				return
			}
			result.Updated++
		}(id)
	}
	wg.Wait()

	if len(result.Errors) == 0 {
		result.Errors = nil
	}

	// refetch kể cả khi có item lỗi, để store phản ánh đúng backend
	items, err := c.Refresh(ctx)
	if err != nil {
		return result, c.store.Items(), err
	}
	return result, items, nil
}

// Delete ghi lệnh xoá; chỉ khi thành công mới gỡ phần tử khỏi store.
func (c *Coordinator[T]) Delete(ctx context.Context, write func(context.Context) error, match func(T) bool) error {
	if err := write(ctx); err != nil {
		return err
	}
	c.store.RemoveBy(match)
	return nil
}

// Create ghi bản ghi mới rồi refetch toàn bộ collection.
func (c *Coordinator[T]) Create(ctx context.Context, write func(context.Context) error) ([]T, error) {
	if err := write(ctx); err != nil {
		return nil, err
	}
	return c.Refresh(ctx)
}
