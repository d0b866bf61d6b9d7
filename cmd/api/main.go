package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/config"
	dbpkg "github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/oauth"
	"github.com/hopeactionjeunesse/hope-site/internal/ratelimit"
	"github.com/hopeactionjeunesse/hope-site/internal/routes"
	"github.com/hopeactionjeunesse/hope-site/internal/session"
	"github.com/hopeactionjeunesse/hope-site/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	cfg.ConfigureLogging()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connection is lazy; a dead database degrades reads instead of blocking startup.
	handle := dbpkg.New(cfg)
	defer func() {
		if err := handle.Close(); err != nil {
			logrus.WithError(err).Warn("[db] close failed")
		}
	}()

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to configure storage")
	}

	sessions, err := session.NewManager(session.Options{
		Secret:     cfg.JWTSecret,
		CookieName: cfg.SessionCookieName,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.CookieSecure,
		AppID:      cfg.OAuthAppID,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to configure sessions")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Handle:   handle,
		Storage:  store,
		Sessions: sessions,
		OAuth:    oauth.NewClient(cfg.OAuthServerURL, cfg.OAuthAppID, cfg.OAuthRedirectURL),
		Limiter:  newLimiter(ctx, cfg),
		Audit:    audit.NewDispatcher(logrus.StandardLogger()),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}

// newLimiter shares counters through Redis when REDIS_URL is set.
func newLimiter(ctx context.Context, cfg *config.Config) ratelimit.Limiter {
	if cfg.RedisURL == "" {
		return ratelimit.NewMemory(cfg.ContactRateLimit, cfg.ContactRateWindow)
	}

	client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logrus.WithError(err).Warn("[ratelimit] redis unavailable, using in-memory limiter")
		return ratelimit.NewMemory(cfg.ContactRateLimit, cfg.ContactRateWindow)
	}
	return ratelimit.NewRedis(client, "hope:ratelimit:", cfg.ContactRateLimit, cfg.ContactRateWindow)
}
