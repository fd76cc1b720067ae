package router

import (
	"database/sql"
	"net/http"

	mem "animal-collection/internal/adapters/storage/memory"
	pg "animal-collection/internal/adapters/storage/postgres"
	"animal-collection/internal/domain/animals"
	"animal-collection/internal/domain/users"
	"animal-collection/internal/domain/views"
	"animal-collection/internal/middleware"
	"animal-collection/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// AuthVerifier puede ser nil (modo dev: headers X-Debug-*).
	AuthVerifier auth.AuthVerifier

	// TokenIssuer puede ser nil (modo dev: login no devuelve token).
	TokenIssuer auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(opts.Logger))

	// La UI del dashboard es un colaborador externo en otro origen.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Debug-User", "X-Debug-Role"},
		MaxAge:         300,
	}))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", func(w http.ResponseWriter, r *http.Request) {
		httpSwagger.WrapHandler(w, r)
	})

	var (
		animalsRepo animals.Repository
		usersRepo   users.Repository
	)

	if opts.DB != nil {
		animalsRepo = pg.NewAnimalsRepo(opts.DB)
		usersRepo = pg.NewUsersRepo(opts.DB)
	} else {
		animalsRepo = mem.NewAnimalsRepo()
		usersRepo = mem.NewUsersRepo()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalsRepo)
	usersSvc := users.NewService(usersRepo)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, opts.TokenIssuer)
	animals.RegisterRoutes(r, animalsSvc)
	views.RegisterRoutes(r, animalsSvc)

	return r
}
