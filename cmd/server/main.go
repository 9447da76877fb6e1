package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/onlinemarket/shop/internal/config"
	"github.com/onlinemarket/shop/internal/db"
	"github.com/onlinemarket/shop/internal/es"
	"github.com/onlinemarket/shop/internal/httpserver"
	"github.com/onlinemarket/shop/internal/logging"
	loggingmw "github.com/onlinemarket/shop/internal/middleware/logging"
	"github.com/onlinemarket/shop/internal/mykafka"
	"github.com/onlinemarket/shop/internal/repo"
	"github.com/onlinemarket/shop/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmpty(cfg.ESURL, "ES_URL")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	topics := []string{"cart_events", "order_events"}
	prod, err := mykafka.NewProducer(cfg.KafkaBrokers, topics)
	if err != nil {
		log.Fatalf("kafka producer error: %v", err)
	}

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch error: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	gormRepo := repo.NewGormRepo(gdb)
	catalogRepo := repo.NewCatalogRepo(gdb, cache)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:          gdb,
		ProductHTTP: &httpserver.ProductHTTP{Repo: catalogRepo},
		SearchHTTP:  &httpserver.SearchHTTP{ES: esClient, Index: "products"},
		CartHTTP: &httpserver.CartHTTP{
			Svc:       &service.CartService{Repo: gormRepo, Catalog: catalogRepo},
			Producer:  prod,
			JWTSecret: cfg.JWTSecret,
		},
		ShopHTTP: &httpserver.ShopHTTP{
			Svc:       &service.CheckoutService{Repo: gormRepo},
			Producer:  prod,
			JWTSecret: cfg.JWTSecret,
		},
		TrackHTTP: &httpserver.TrackHTTP{
			Svc:       &service.OrderService{Repo: gormRepo},
			JWTSecret: cfg.JWTSecret,
		},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
