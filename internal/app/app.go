package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Evasive-6/TriviaSwift/internal/config"
	"github.com/Evasive-6/TriviaSwift/internal/db/filestore"
	"github.com/Evasive-6/TriviaSwift/internal/db/repository"
	"github.com/Evasive-6/TriviaSwift/internal/game"
	"github.com/Evasive-6/TriviaSwift/internal/logging"
	"github.com/Evasive-6/TriviaSwift/internal/metrics"
	"github.com/Evasive-6/TriviaSwift/internal/question"
	"github.com/Evasive-6/TriviaSwift/internal/score"
	"github.com/Evasive-6/TriviaSwift/internal/server"
	"github.com/Evasive-6/TriviaSwift/internal/user"
	userjwt "github.com/Evasive-6/TriviaSwift/internal/user/jwt"
)

// Application aggregates shared infrastructure (storage, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, storage, cache and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Str("storage_driver", cfg.Storage.Driver).Msg("starting application bootstrap")

	var (
		pool          *pgxpool.Pool
		questionStore question.Store
		scoreRepo     score.Repository
		userRepo      user.Repository
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

		var err error
		pool, err = pgxpool.New(ctx, connString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		questionStore = repository.NewQuestionRepository(pool)
		scoreRepo = repository.NewScoreRepository(pool)
		userRepo = repository.NewUserRepository(pool)

	case config.DriverFile:
		var err error
		questionStore, err = filestore.NewQuestionStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open question store: %w", err)
		}
		scoreRepo, err = filestore.NewScoreStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open score store: %w", err)
		}

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	var redisClient *redis.Client
	var questionCache question.CorpusCache
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		questionCache = question.NewCache(redisClient, cfg.Game.QuestionCacheTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("question cache enabled")
	} else {
		logger.Info().Msg("REDIS_ADDR not set; question cache disabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	questionSvc := question.NewService(questionStore, questionCache, logger)
	scoreSvc := score.NewService(scoreRepo, logger)
	gameSvc := game.NewService(
		game.NewStore(),
		questionSvc,
		scoreSvc,
		m,
		game.ServiceOptions{DefaultQuestionCount: cfg.Game.DefaultQuestionCount},
		logger,
	)

	handlers := server.Handlers{
		Game:     game.NewHTTPHandlers(gameSvc, logger),
		Question: question.NewHTTPHandlers(questionSvc, logger),
		Score:    score.NewHTTPHandlers(scoreSvc, logger),
	}

	// User accounts need both a JWT secret and the Postgres driver; the file
	// driver has no user store.
	if cfg.Security.JWTSecret != "" && userRepo != nil {
		userSvc := user.NewService(userRepo, user.ServiceOptions{
			TokenConfig: userjwt.TokenConfig{
				Secret: []byte(cfg.Security.JWTSecret),
				Issuer: cfg.Name,
			},
		}, logger)
		handlers.User = user.NewHTTPHandlers(userSvc, logger)
		handlers.TokenMgr = userSvc.TokenManager()
	} else {
		logger.Warn().Msg("user accounts disabled (requires JWT_SECRET and the postgres driver)")
	}

	apiServer := server.NewHTTPServer(cfg, handlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
