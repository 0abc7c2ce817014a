// Package predictiondashboard собирает приложение целиком: хранилище,
// кеш, сервисы, маршруты и HTTP-сервер с мягкой остановкой.
package predictiondashboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/prediction-dashboard/internal/cache"
	"github.com/magabrotheeeer/prediction-dashboard/internal/config"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/prediction-dashboard/internal/migrations"
	authservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/auth"
	predictionservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/prediction"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage/memstorage"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage/postgres"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *sql.DB // nil при драйвере memory
}

// New инициализирует приложение по конфигу: выбирает драйвер хранилища,
// прогоняет миграции для postgres, подключает Redis (или заглушку кеша,
// если адрес не задан), собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	var (
		store storage.Storage
		db    *sql.DB
	)
	switch cfg.StorageDriver {
	case "memory":
		store = memstorage.New()
		logger.Info("using in-memory storage")
	case "postgres":
		pg, err := postgres.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := migrations.Run(pg.DB, cfg.MigrationsPath); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := postgres.CheckDatabaseReady(pg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		store = pg
		db = pg.DB
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.StorageDriver)
	}

	var appCache predictionservice.Cache
	if cfg.AddressRedis == "" {
		appCache = cache.Noop{}
		logger.Info("redis address is empty, cache disabled")
	} else {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		appCache = redisCache
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authSvc := authservice.New(store, jwtMaker)
	predictionSvc := predictionservice.New(store, store, appCache, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, predictionSvc, authSvc)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до его остановки или отмены
// контекста. При отмене сервер останавливается мягко с таймаутом.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.db != nil {
			a.db.Close()
		}
		return err
	}
}
