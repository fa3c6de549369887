package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fetidd/gateway/internal/middleware"
	"github.com/fetidd/gateway/internal/obs"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	_ "github.com/lib/pq"
)

// App is the main application. It wires the repository, service and HTTP API
// together and owns their lifecycle.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *Config
	db     *sql.DB
}

func NewApp(logger *slog.Logger, config *Config) *App {
	logger = logger.With(slog.String("app", "gateway"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: config,
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	if a.config.DatabaseURL == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	db, err := sql.Open("postgres", a.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxIdleConns(a.config.MaxIdleConns)
	db.SetMaxOpenConns(a.config.MaxOpenConns)
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	a.db = db
	repository := NewPGRepository(db)

	obs.Init()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.NewStructuredLogger(a.logger))

	api := NewAPI(NewService(repository, a.logger), a.logger)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Get("/-/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := repository.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", obs.Handler())

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: obs.Instrument(router),
	}

	a.wg.Add(1)
	go func() {
		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}

		a.wg.Done()
	}()

	return nil
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	a.srv.Shutdown(context.Background())

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("closing database pool", "err", err)
		}
	}

	a.wg.Wait()

	a.logger.Info("app stopped")
}
