package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alfagnish/userlist/internal/config"
	"github.com/alfagnish/userlist/internal/handlers"
	"github.com/alfagnish/userlist/internal/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id assigned by requestID.
const RequestIDHeader = "X-Request-Id"

// NewUsers creates a chi router serving the user registry API.
func NewUsers(cfg *config.Config, reg *users.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// ── Handlers ────────────────────────────────────────────
	usersH := handlers.NewUsersHandler(reg, logger)
	watchH := handlers.NewWatchHandler(reg, logger)
	healthH := handlers.NewHealthHandler(reg)

	// ── Route groups ────────────────────────────────────────
	r.Route("/users", func(r chi.Router) {
		usersH.Routes(r)
		r.Route("/ws", watchH.Routes)
	})
	r.Route("/health", healthH.Routes)

	return r
}

// NewHello creates a handler that answers every method and path with the
// greeting of the given variant.
func NewHello(variant string, logger *slog.Logger) (http.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	helloH, err := handlers.NewHelloHandler(variant)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Handle("/", helloH)
	r.Handle("/*", helloH)
	return r, nil
}

// requestID tags every request with a fresh uuid unless the client already
// sent one, and echoes it in the response headers.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each HTTP request with method, path, status code,
// and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start).Round(time.Millisecond),
				"request_id", r.Header.Get(RequestIDHeader),
			)
		})
	}
}
