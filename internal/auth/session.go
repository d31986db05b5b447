// Package auth resolves bearer tokens into subscriber profiles.
package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/metrics"
	"bcstudio-server/internal/models"
)

const (
	sessionCachePrefix = "session:"
	sessionCacheTTL    = 5 * time.Minute
)

// Service resolves session tokens. Resolved profiles are cached in Redis
// for a short window so hot tokens skip Postgres.
type Service struct {
	db     *database.PostgresClient
	cache  *database.RedisClient
	logger logger.Logger
}

// NewService creates an auth service. cache may be nil.
func NewService(db *database.PostgresClient, cache *database.RedisClient, log logger.Logger) *Service {
	return &Service{db: db, cache: cache, logger: log}
}

// Authenticate maps a bearer token to the profile it belongs to. Expired
// or unknown tokens fail with UNAUTHORIZED.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Profile, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("missing bearer token")
	}

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, sessionCachePrefix+token); err == nil {
			var profile models.Profile
			if err := json.Unmarshal([]byte(raw), &profile); err == nil {
				metrics.CacheHitsTotal.WithLabelValues("session").Inc()
				return &profile, nil
			}
		}
		metrics.CacheMissesTotal.WithLabelValues("session").Inc()
	}

	var profile models.Profile
	err := s.db.QueryRow(ctx,
		`SELECT p.id, p.email, p.full_name, p.plan, p.role, p.created_at, p.updated_at
		 FROM sessions s
		 JOIN profiles p ON p.id = s.user_id
		 WHERE s.token = $1 AND s.expires_at > NOW()`, token).
		Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.Plan, &profile.Role, &profile.CreatedAt, &profile.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewUnauthorizedError("invalid or expired session")
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(&profile); err == nil {
			if err := s.cache.Set(ctx, sessionCachePrefix+token, data, sessionCacheTTL); err != nil {
				s.logger.Warn("failed to cache session", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return &profile, nil
}

// Invalidate drops the cached profile for a token, used after plan or
// role changes so the next request re-reads Postgres.
func (s *Service) Invalidate(ctx context.Context, token string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, sessionCachePrefix+token); err != nil {
		s.logger.Warn("failed to invalidate session cache", map[string]interface{}{"error": err.Error()})
	}
}
