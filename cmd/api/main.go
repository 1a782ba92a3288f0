package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Bakespear/Tasty-Bites/internal/ai"
	"github.com/Bakespear/Tasty-Bites/internal/config"
	"github.com/Bakespear/Tasty-Bites/internal/feedback"
	"github.com/Bakespear/Tasty-Bites/internal/handlers"
	"github.com/Bakespear/Tasty-Bites/internal/mpesa"
	"github.com/Bakespear/Tasty-Bites/internal/orders"
	"github.com/Bakespear/Tasty-Bites/internal/payments"
	"github.com/Bakespear/Tasty-Bites/internal/storage"
)

func setupRouter(cfg config.Config, gateway *storage.Gateway, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(handlers.RequestID())

	mpesaClient := mpesa.NewClient(mpesa.Config{
		ConsumerKey:    cfg.DarajaConsumerKey,
		ConsumerSecret: cfg.DarajaConsumerSecret,
		ShortCode:      cfg.DarajaShortCode,
		Passkey:        cfg.DarajaPasskey,
		CallbackURL:    cfg.DarajaCallbackURL,
		BaseURL:        cfg.DarajaBaseURL,
	}, logger)

	aiClient := ai.NewGeminiClient(cfg.GoogleAIKey)

	handlers.Register(r, handlers.Deps{
		Orders:     orders.NewService(gateway, logger),
		Receiver:   payments.NewReceiver(gateway, logger),
		Mpesa:      mpesaClient,
		Feedback:   feedback.NewService(gateway, aiClient, logger),
		AI:         aiClient,
		Gateway:    gateway,
		AdminKey:   cfg.AdminKey,
		AdminLimit: cfg.AdminListLimit,
		Logger:     logger,
	})

	// serve the storefront when a static dir is configured; /api/*
	// misses still get a JSON 404
	r.NoRoute(func(c *gin.Context) {
		if cfg.StaticDir == "" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		path := c.Request.URL.Path
		if path == "/" {
			path = "/index.html"
		}
		c.File(filepath.Join(cfg.StaticDir, filepath.Clean(path)))
	})

	return r
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Load()

	var primary storage.Store
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoProbe)
		db, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		cancel()
		if err != nil {
			logger.Warn("MongoDB unavailable, file fallback only", slog.String("error", err.Error()))
		} else {
			logger.Info("connected to MongoDB", slog.String("database", cfg.MongoDB))
			primary = storage.NewMongoStore(db)
		}
	}

	gateway := storage.NewGateway(primary, storage.NewFileStore(cfg.DataDir), logger)
	r := setupRouter(cfg, gateway, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
}
