package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Pinger verifies connectivity to the backing store. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter registers all API routes on a new ServeMux.
func NewRouter(handler *WordHandler, pinger Pinger, logger zerolog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/words/lookup/{word}", handler.Lookup)
	mux.HandleFunc("GET /api/words/cache/{word}", handler.GetFromCache)
	mux.HandleFunc("GET /api/words/search", handler.Search)
	mux.HandleFunc("GET /api/words/statistics", handler.GetStatistics)
	mux.HandleFunc("GET /healthz", healthHandler(pinger, logger))
	return mux
}

func healthHandler(pinger Pinger, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := pinger.PingContext(ctx); err != nil {
			logger.Error().Err(err).Msg("database health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// RequestLogger logs one line per request with status and duration.
func RequestLogger(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.statusCode).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// CORSMiddleware allows cross-origin requests from the configured origins.
func CORSMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
