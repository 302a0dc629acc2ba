// File: dayplanner/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayplanner/config"
	"dayplanner/cron"
	"dayplanner/database"
	recordsRepo "dayplanner/database/repository/records"
	sessionRepo "dayplanner/database/repository/session"
	"dayplanner/handlers"
	"dayplanner/routes"
	"dayplanner/services/live"
	"dayplanner/services/schedule"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	checks := map[string]utils.HealthCheck{}

	// Session schedules.
	var store sessionRepo.ScheduleStore
	switch cfg.SessionBackend {
	case config.BackendRedis:
		client, err := utils.GetSessionCacheClient()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer client.Close()
		checks["redis"] = utils.RedisCheck(client)
		store = sessionRepo.NewRedisScheduleStore(client, cfg.SessionTTL)
	case config.BackendMemory:
		store = sessionRepo.NewMemoryScheduleStore()
	default:
		logger.Sugar().Fatalf("main: unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}

	// Attempt records.
	var records recordsRepo.AttemptRecordRepository
	switch cfg.RecordsBackend {
	case config.BackendMongo:
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer database.MongoClient.Disconnect(context.Background())
		checks["mongo"] = utils.MongoCheck(database.MongoClient)
		records = recordsRepo.NewMongoRecordRepo(database.MongoClient, cfg.DatabaseName)
		if err := recordsRepo.EnsureIndexes(ctx, records); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.Error(err))
		}
	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer db.Close()
		checks["sqlite"] = db.PingContext
		if records, err = recordsRepo.NewSQLiteRecordRepo(db); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
	case config.BackendNone:
		records = recordsRepo.NewNoopRecordRepo()
	default:
		logger.Sugar().Fatalf("main: unknown RECORDS_BACKEND %q", cfg.RecordsBackend)
	}

	utils.StartHealthMonitor(ctx, time.Minute, checks)

	sweeper, err := cron.StartSessionSweeper(cfg.SessionSweepSpec, store, cfg.SessionTTL, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid SESSION_SWEEP_SPEC %q: %v", cfg.SessionSweepSpec, err)
	}

	// services.
	hub := live.NewHub(logger, nil)
	scheduleService := schedule.NewDefaultScheduleService(store, records, hub, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, hub)

	router := routes.NewRouter(cfg, logger, handlers.NewHandlerBundle(scheduleHandler))

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	<-sweeper.Stop().Done()
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
