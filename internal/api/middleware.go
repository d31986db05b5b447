package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/metrics"
	"bcstudio-server/internal/models"
)

type contextKey string

const profileKey contextKey = "profile"

// ProfileFromContext returns the authenticated profile set by the auth
// middleware. The bool is false on unauthenticated requests.
func ProfileFromContext(ctx context.Context) (*models.Profile, bool) {
	p, ok := ctx.Value(profileKey).(*models.Profile)
	return p, ok
}

// authMiddleware resolves the bearer token and stores the profile in the
// request context. Requests without a valid session are rejected.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		profile, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), profileKey, profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// profile is a handler-side helper; the auth middleware guarantees the
// value exists on /v1 routes.
func (s *Server) profile(r *http.Request) (*models.Profile, error) {
	p, ok := ProfileFromContext(r.Context())
	if !ok {
		return nil, errors.NewUnauthorizedError("no session in context")
	}
	return p, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware records Prometheus and OTel request metrics keyed by
// the chi route pattern, never the raw path.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(rec.status)
		duration := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())
		if s.obs != nil {
			s.obs.RecordRequestProcessed(r.Context(), route, status)
			s.obs.RecordRequestDuration(r.Context(), duration, route)
		}
	})
}

// tracingMiddleware opens a span per request when tracing is enabled.
func (s *Server) tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.tracing == nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx, span := s.tracing.StartSpan(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
