package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/protim1451/task-12-server/internal/core/auth"
	"github.com/protim1451/task-12-server/internal/core/cache"
	"github.com/protim1451/task-12-server/internal/core/config"
	"github.com/protim1451/task-12-server/internal/core/database"
	"github.com/protim1451/task-12-server/internal/core/logger"
	"github.com/protim1451/task-12-server/internal/core/server"
	"github.com/protim1451/task-12-server/internal/payment"
	"github.com/protim1451/task-12-server/internal/repo"
	"github.com/protim1451/task-12-server/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	var (
		log     *zap.Logger
		cleanup func()
	)
	if rot := cfg.Log.Rotate; rot.Enable {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			rot.Filename, rot.MaxSizeMB, rot.MaxBackups, rot.MaxAgeDays, rot.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	client, db, err := database.NewMongo(database.Opts{
		URI:               cfg.Mongo.URI,
		Database:          cfg.Mongo.Database,
		Username:          cfg.Mongo.Username,
		Password:          cfg.Mongo.Password,
		ConnectTimeoutSec: cfg.Mongo.ConnectTimeoutSec,
	})
	if err != nil {
		log.Fatal("mongo open", zap.Error(err))
	}
	log.Info("database connected", zap.String("database", cfg.Mongo.Database))

	tokener := &auth.Tokener{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var rc *cache.Cache
	if cfg.Redis.Enable {
		rc = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	r := router.NewAPIEngine(router.Deps{
		Log:       log,
		Tokener:   tokener,
		Users:     repo.NewUserRepo(db),
		Pets:      repo.NewPetRepo(db),
		Adoptions: repo.NewAdoptionRepo(db),
		Campaigns: repo.NewCampaignRepo(db),
		Payments:  repo.NewPaymentRepo(db),
		Intents:   payment.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.Currency),
		Cache:     rc,
		CORS:      cfg.CORS,
		Features:  cfg.Features,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = client.Disconnect(ctx)
	log.Info("api stopped gracefully")
}
