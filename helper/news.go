package helper

import (
	"context"
	"time"

	"arena_manager/collection"
	"arena_manager/gateway"
	"arena_manager/logger"
	"arena_manager/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// NewsCache giữ nội dung trang tin công khai trong bộ nhớ để trang public
// không chết theo mỗi lần gateway chập chờn. Làm mới theo lịch.
type NewsCache struct {
	gw         *gateway.Client
	articles   *collection.Store[model.News]
	featured   *collection.Store[model.News]
	categories *collection.Store[model.NewsCategory]
	scheduler  gocron.Scheduler
}

func NewNewsCache(gw *gateway.Client) *NewsCache {
	return &NewsCache{
		gw:         gw,
		articles:   collection.NewStore[model.News](),
		featured:   collection.NewStore[model.News](),
		categories: collection.NewStore[model.NewsCategory](),
	}
}

// Refresh kéo lại toàn bộ nội dung. Mỗi mảng làm mới độc lập:
// một endpoint lỗi không làm mất cache của các mảng còn lại.
func (n *NewsCache) Refresh(ctx context.Context) error {
	var firstErr error

	token := n.articles.Begin()
	if items, err := n.gw.PublicNews(ctx); err != nil {
		firstErr = err
	} else {
		n.articles.Complete(token, items)
	}

	token = n.featured.Begin()
	if items, err := n.gw.FeaturedNews(ctx); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else {
		n.featured.Complete(token, items)
	}

	token = n.categories.Begin()
	if items, err := n.gw.NewsCategories(ctx); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else {
		n.categories.Complete(token, items)
	}

	if firstErr != nil {
		logger.L().Warn("news cache refresh incomplete", zap.Error(firstErr))
	}
	return firstErr
}

// StartScheduler chạy job làm mới định kỳ, trả lỗi nếu không dựng được lịch.
func (n *NewsCache) StartScheduler(interval time.Duration) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			_ = n.Refresh(ctx)
		}),
	)
	if err != nil {
		return err
	}
	s.Start()
	n.scheduler = s
	return nil
}

func (n *NewsCache) StopScheduler() {
	if n.scheduler != nil {
		_ = n.scheduler.Shutdown()
	}
}

func (n *NewsCache) Articles() []model.News { return n.articles.Items() }

func (n *NewsCache) Featured() []model.News { return n.featured.Items() }

func (n *NewsCache) Categories() []model.NewsCategory { return n.categories.Items() }

// BySlug tra cache trước (so khớp slug đã chuẩn hoá), trượt thì hỏi gateway.
func (n *NewsCache) BySlug(ctx context.Context, s string) (*model.News, error) {
	want := slug.Make(s)
	for _, item := range n.articles.Items() {
		if item.Slug == s || slug.Make(item.Title) == want || item.Slug == want {
			found := item
			return &found, nil
		}
	}
	return n.gw.NewsBySlug(ctx, s)
}

// FilterNewsByCategory lọc tin theo slug chuyên mục, giữ nguyên thứ tự.
func FilterNewsByCategory(items []model.News, categorySlug string) []model.News {
	if categorySlug == "" || categorySlug == "all" {
		return items
	}
	return collection.Filter(items, func(n model.News) bool {
		return n.Category != nil && n.Category.Slug == categorySlug
	})
}
