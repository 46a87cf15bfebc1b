package router

import (
	"arena_manager/handler"
	"arena_manager/middleware"
	"arena_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	arena := v1.Group("/arena", logger.New())
	arena.Get("/", middleware.Protected(), handler.GetArenas)
	arena.Get("/export", middleware.Protected(), handler.ExportArenas)
	arena.Get("/:arenaId", middleware.Protected(), validate.GetById("arenaId"), handler.GetArenaById)
	arena.Put("/:arenaId", middleware.Protected(), validate.EditArena("arenaId"), handler.EditArena)
	arena.Patch("/:arenaId/status", middleware.Protected(), validate.UpdateArenaStatus("arenaId"), handler.UpdateArenaStatus)
	arena.Delete("/:arenaId", middleware.Protected(), validate.GetById("arenaId"), handler.DeleteArena)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Get("/", middleware.Protected(), handler.GetFeedbacks)
	feedback.Get("/export", middleware.Protected(), handler.ExportFeedbacks)
	feedback.Get("/stats", middleware.Protected(), handler.GetFeedbackStats)
	feedback.Post("/bulk-status", middleware.Protected(), validate.BulkFeedbackStatus(), handler.BulkFeedbackStatus)
	feedback.Get("/:feedbackId", middleware.Protected(), validate.GetById("feedbackId"), handler.GetFeedbackById)
	feedback.Patch("/:feedbackId/status", middleware.Protected(), validate.UpdateFeedbackStatus("feedbackId"), handler.UpdateFeedbackStatus)

	payment := v1.Group("/payment", logger.New())
	payment.Get("/", middleware.Protected(), handler.GetPayments)
	payment.Get("/export", middleware.Protected(), handler.ExportPayments)
	payment.Get("/stats", middleware.Protected(), handler.GetPaymentStats)
	payment.Post("/", middleware.Protected(), validate.CreatePayment(), handler.CreatePayment)
	payment.Get("/:paymentId", middleware.Protected(), validate.GetById("paymentId"), handler.GetPaymentById)
	payment.Patch("/:paymentId/status", middleware.Protected(), validate.UpdatePaymentStatus("paymentId"), handler.UpdatePaymentStatus)
	payment.Delete("/:paymentId", middleware.Protected(), validate.GetById("paymentId"), handler.DeletePayment)

	venue := v1.Group("/venue", logger.New())
	venue.Get("/", middleware.Protected(), handler.GetVenues)
	venue.Get("/courts", middleware.Protected(), handler.GetCourts)
	venue.Get("/court-types", middleware.Protected(), handler.GetCourtTypes)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	// Trang công khai, không cần đăng nhập
	tintuc := v1.Group("/tin-tuc")
	tintuc.Get("/", handler.GetPublicNews)
	tintuc.Get("/noi-bat", handler.GetFeaturedNews)
	tintuc.Get("/chuyen-muc", handler.GetNewsCategories)
	tintuc.Get("/:slug", handler.GetNewsBySlug)
}
