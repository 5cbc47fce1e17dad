package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"coursehub/config"
	"coursehub/database"
	"coursehub/logger"
	"coursehub/server"
	"coursehub/services/catalog"
	"coursehub/services/identity"
	"coursehub/services/ledger"
	"coursehub/services/locks"
	"coursehub/utils"
)

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		zap.L().Fatal("failed to connect to the database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Enrollment locks are shared through Redis when several instances run
	var locker locks.Locker = locks.NewLocal()
	redisClient, err := utils.NewRedisClient(ctx, cfg)
	if err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		locker = locks.NewRedis(redisClient)
	}

	enrollments := ledger.New(db, locker)
	courses := catalog.New(db)

	if cfg.SchedulerEnabled {
		scheduler, err := utils.InitializeScheduler(cfg, enrollments, courses)
		if err != nil {
			zap.L().Fatal("failed to start scheduler", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	app := server.New(cfg, server.Deps{
		DB:      db,
		Ledger:  enrollments,
		Users:   identity.New(db, cfg.SaltRound),
		Catalog: courses,
		Mailer:  utils.NewMailer(cfg),
	})

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zap.L().Error("error during shutdown", zap.Error(err))
		}
	}()

	zap.L().Info("server is running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
