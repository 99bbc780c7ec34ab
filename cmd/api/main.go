package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"variety-store-server/internal/core/auth"
	"variety-store-server/internal/core/cache"
	"variety-store-server/internal/core/config"
	"variety-store-server/internal/core/database"
	"variety-store-server/internal/core/logger"
	"variety-store-server/internal/core/server"
	"variety-store-server/internal/payment"
	"variety-store-server/internal/repo"
	"variety-store-server/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load("") // 路径解析（含 CONFIG_PATH）都在 Load 里


	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithFile(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// mongo（失败直接 Fatal）
	client, db := mustConnectMongo(cfg, log)
	log.Info("mongo connected", zap.String("database", cfg.Mongo.Database))

	// redis 列表缓存（可选）
	var ch *cache.Cache
	if cfg.Redis.Addr != "" {
		ch = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("list cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// stripe
	pay := payment.NewStripe(cfg.Stripe.SecretKey, cfg.Stripe.ClientURL, cfg.Stripe.Currency)

	users := repo.NewUserRepo(db)
	r := router.NewEngine(log, router.Deps{
		Users:      users,
		Categories: repo.NewCategoryRepo(db),
		Products:   repo.NewProductRepo(db),
		Orders:     repo.NewOrderRepo(db),
		Resolver:   &auth.StoreResolver{Users: users},
		Payments:   pay,
		Cache:      ch,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("variety store api starting", zap.String("addr", addr))

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = client.Disconnect(ctx)
	log.Info("api stopped gracefully")
}

func mustConnectMongo(cfg *config.Config, l *zap.Logger) (*mongo.Client, *mongo.Database) {
	client, db, err := database.Connect(context.Background(), database.Opts{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		l.Fatal("mongo open", zap.Error(err))
	}
	return client, db
}
