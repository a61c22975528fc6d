package main

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"sleepapi/internal/config"
	"sleepapi/internal/db"
	"sleepapi/internal/http/handlers"
	appmw "sleepapi/internal/http/middleware"
	"sleepapi/internal/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize()
	log := logger.Get()
	cfg := config.Load()

	sqlDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.EnsureSeedUser(sqlDB, cfg); err != nil {
		log.Fatalf("failed to ensure seed user: %v", err)
	}

	db.StartStatsWorker(sqlDB, time.Duration(cfg.StatsIntervalMinutes)*time.Minute)

	handlers.InitPrometheusMetrics()
	appmw.InitHTTPMetrics()

	r := router.New()

	// Global middleware chain: request logger, then request metrics, then router
	handler := appmw.RequestLogger(appmw.HTTPMetrics(r.Handler))

	r.GET("/healthz", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	})
	r.GET("/metrics", handlers.MetricsHandler())

	r.POST("/users/create", handlers.CreateUser(sqlDB))
	r.GET("/users/findByUsername", handlers.FindUserByUsername(sqlDB))

	r.POST("/users/{userId}/logs", handlers.CreateSleepLog(sqlDB))
	r.GET("/users/{userId}/logs", handlers.GetSleepLogs(sqlDB))
	r.GET("/users/{userId}/logs/report", handlers.SleepLogReport(sqlDB, cfg))
	r.GET("/users/{userId}/logs/lastNight", handlers.GetLastNightSleepLog(sqlDB))
	r.GET("/users/{userId}/logs/{entryDate}", handlers.GetSleepLog(sqlDB))

	log.Infof("sleepapi listening on %s", cfg.ListenAddr)
	if err := fasthttp.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
