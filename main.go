package main

import (
	"context"
	"log"
	"time"

	"arena_manager/config"
	"arena_manager/gateway"
	"arena_manager/handler"
	"arena_manager/helper"
	"arena_manager/logger"
	"arena_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	zlog := logger.Init(config.ConfigDefault("LOG_LEVEL", "info"), config.Config("APP_ENV") == "development")
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	gw := gateway.New(
		config.ConfigDefault("API_BASE_URL", "http://localhost:8000/api/v1"),
		config.ConfigDuration("GATEWAY_TIMEOUT", 10*time.Second),
		zlog,
	)

	newsCache := helper.NewNewsCache(gw)
	// nạp cache tin tức lần đầu, lỗi thì scheduler sẽ thử lại
	func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = newsCache.Refresh(ctx)
	}()
	if err := newsCache.StartScheduler(config.ConfigDuration("NEWS_REFRESH_INTERVAL", 5*time.Minute)); err != nil {
		log.Fatal(err)
	}
	defer newsCache.StopScheduler()

	handler.Setup(gw, newsCache)
	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8002")))
}
