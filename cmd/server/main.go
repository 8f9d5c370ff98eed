package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"donorhub.app/api/common/logger"
	"donorhub.app/api/common/otel"
	"donorhub.app/api/core/config"
	"donorhub.app/api/core/db"
	"donorhub.app/api/internal/http/middleware"
	httprouter "donorhub.app/api/internal/http/router"
	"donorhub.app/api/internal/notify"
	"donorhub.app/api/internal/service"
	"donorhub.app/api/internal/storage"
	"donorhub.app/api/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "donorhub api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	publisher, err := newPublisher(ctx, cfg.Notification)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	objects, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize object storage", "error", err, "backend", cfg.Storage.Backend)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "object storage ready", "backend", cfg.Storage.Backend)

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, service.NewTxRunner(database), objects, publisher, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	// Notifications are delivered after the response is written.
	services.Notifications().Wait()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func newPublisher(ctx context.Context, cfg config.NotificationConfig) (notify.Publisher, error) {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "redis disabled, notifications are stored but not pushed")
		return notify.NewNoopPublisher(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	slog.InfoContext(ctx, "redis connected", "channel_prefix", cfg.ChannelPrefix)

	return notify.NewRedisPublisher(client, slog.Default()), nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	auth := middleware.NewAuthenticator(services.Users(), middleware.AuthConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
		Leeway: cfg.Auth.Leeway,
	})

	routerCfg := httprouter.RouterConfig{}
	if !cfg.Storage.UsesGCS() {
		routerCfg.MediaDir = cfg.Storage.LocalDir
		routerCfg.MediaPath = mediaPath(cfg.Storage.PublicBaseURL)
	}

	httprouter.SetupRoutes(router, services, auth, routerCfg)

	return router
}

// mediaPath is the route local uploads are served from, taken from the public base URL.
func mediaPath(publicBaseURL string) string {
	u, err := url.Parse(publicBaseURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/media"
	}
	return u.Path
}

const banner = `
 ____   ___  _   _  ___  ____  _   _ _   _ ____
|  _ \ / _ \| \ | |/ _ \|  _ \| | | | | | | __ )
| | | | | | |  \| | | | | |_) | |_| | | | |  _ \
| |_| | |_| | |\  | |_| |  _ <|  _  | |_| | |_) |
|____/ \___/|_| \_|\___/|_| \_\_| |_|\___/|____/
`
