package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bloodconnect/backend/config"
	"bloodconnect/backend/internal/api/handler"
	"bloodconnect/backend/internal/api/router"
	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/internal/repository"
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/internal/ws"
	"bloodconnect/backend/pkg/database"
	"bloodconnect/backend/pkg/jwt"
	applogger "bloodconnect/backend/pkg/logger"
	"bloodconnect/backend/pkg/payment"
	"bloodconnect/backend/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting application",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connect to the database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	// 3.1 Run database migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("obtain underlying sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. Connect to Redis (optional: run degraded when unavailable,
	//    token blacklist and login rate limiting are skipped)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, token blacklist disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Initialize the JWT manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Load district/upazila reference data
	refStore, err := refdata.Load()
	if err != nil {
		logger.Fatal("load reference data failed", zap.Error(err))
	}

	// 7. Payment gateway (optional: without a Stripe key the funding
	//    checkout endpoints report payments disabled)
	var gateway service.CheckoutGateway
	if cfg.Payment.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(&cfg.Payment)
	} else {
		logger.Warn("no stripe secret key configured, payments disabled")
	}

	// 8. WebSocket hub for donation-request lifecycle events
	hub := ws.NewHub(logger)
	go hub.Run()

	// 9. Dependency injection: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, refStore, gateway, hub, logger)
	h := handler.NewHandler(svc, hub)

	// 10. Initialize routing
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 11. Start the HTTP server (graceful shutdown)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	// 12. Wait for a termination signal, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("application stopped")
}
