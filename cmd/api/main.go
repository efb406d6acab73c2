package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Lelo88/items-api-golang/internal/auth"
	"github.com/Lelo88/items-api-golang/internal/config"
	"github.com/Lelo88/items-api-golang/internal/db"
	"github.com/Lelo88/items-api-golang/internal/docs"
	"github.com/Lelo88/items-api-golang/internal/health"
	"github.com/Lelo88/items-api-golang/internal/httpx"
	"github.com/Lelo88/items-api-golang/internal/items"
	"github.com/Lelo88/items-api-golang/internal/storage"
)

// appPool es lo que main necesita de un pool de Postgres.
type appPool interface {
	storage.Database
	Ping(ctx context.Context) error
	Close()
}

// Seams para poder testear los caminos fatales sin levantar nada real.
var (
	loadConfigFn = config.Load
	newPoolFn    = func(ctx context.Context, databaseURL string) (appPool, error) {
		return db.NewPool(ctx, databaseURL)
	}
	listenAndServeFn = http.ListenAndServe
	logfFn           = log.Printf
	fatalf           = log.Fatalf
)

func main() {
	if err := run(); err != nil {
		fatalf("%v", err)
	}
}

func run() error {
	cfg, err := loadConfigFn()
	if err != nil {
		return err
	}

	// Contexto raíz del proceso.
	ctx := context.Background()

	// Storage según driver configurado. Ambos implementan el mismo puerto.
	var (
		repository items.RepositoryAPI
		probe      health.Pinger
	)
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, err := newPoolFn(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		repository = storage.NewPostgresRepository(pool)
		probe = pool
	default:
		jsonRepository, err := storage.NewJSONRepository(cfg.DataDir)
		if err != nil {
			return err
		}
		repository = jsonRepository
		probe = jsonRepository
	}

	users, err := auth.NewInMemoryUserRepository(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.JWTTTL)

	router := newRouter(
		items.NewHandler(items.NewService(repository)),
		auth.NewHandler(auth.NewService(users, tokens)),
		tokens,
		health.New(probe),
	)

	addr := ":" + cfg.Port
	logfFn("listening on %s (storage=%s)", addr, cfg.StorageDriver)
	return listenAndServeFn(addr, router)
}

// newRouter arma el router completo. Separado de run para poder testearlo.
func newRouter(itemsHandler *items.Handler, authHandler *auth.Handler, verifier auth.TokenVerifierAPI, healthHandler *health.Handler) chi.Router {
	router := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusNotFound, "not_found", "resource not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	// Rutas públicas: login, health y docs.
	auth.RegisterRoutes(router, authHandler)
	docs.RegisterRoutes(router)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	// Todo /items pasa por el chequeo de bearer token ANTES del dominio.
	router.Group(func(protected chi.Router) {
		protected.Use(auth.RequireToken(verifier))
		items.RegisterRoutes(protected, itemsHandler)
	})

	return router
}
