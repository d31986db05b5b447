// Package library serves the gated content library: posts, lessons, code
// snippets and tips. Entitlement is enforced server side; locked items are
// listed with their content stripped so the client can render upgrade
// prompts without ever receiving gated material.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/metrics"
	"bcstudio-server/internal/entitlement"
	"bcstudio-server/internal/models"
)

const postsCacheKey = "library:posts"

// Searcher is the subset of the Elasticsearch client the library needs.
type Searcher interface {
	Search(ctx context.Context, index string, query map[string]interface{}, out interface{}) error
}

// Service reads library content. Posts come from Postgres with a Redis
// cache in front; search goes to Elasticsearch with a SQL ILIKE fallback.
type Service struct {
	db       *database.PostgresClient
	cache    *database.RedisClient
	searcher Searcher
	cfg      config.LibraryConfig
	index    string
	logger   logger.Logger
}

// NewService creates a library service. cache and searcher may be nil.
func NewService(db *database.PostgresClient, cache *database.RedisClient, searcher Searcher, cfg config.LibraryConfig, index string, log logger.Logger) *Service {
	return &Service{db: db, cache: cache, searcher: searcher, cfg: cfg, index: index, logger: log}
}

// ==========================
// Posts
// ==========================

// ListPosts returns all published posts with per-caller lock flags. Locked
// posts keep title, excerpt and category but lose their content.
func (s *Service) ListPosts(ctx context.Context, userPlan models.Plan) ([]models.LibraryPost, error) {
	posts, err := s.publishedPosts(ctx)
	if err != nil {
		return nil, err
	}
	return lockPosts(posts, userPlan), nil
}

// GetPost returns one published post. Locked posts are denied with
// PLAN_REQUIRED rather than stripped, the list already carries the teaser.
func (s *Service) GetPost(ctx context.Context, userPlan models.Plan, slug string) (*models.LibraryPost, error) {
	var p models.LibraryPost
	err := s.db.QueryRow(ctx,
		`SELECT id, title, slug, excerpt, content, category, plan_required, published, created_at
		 FROM library_posts WHERE slug = $1 AND published = TRUE`, slug).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Category, &p.PlanRequired, &p.Published, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("post")
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	if entitlement.IsLocked(userPlan, p.PlanRequired) {
		return nil, errors.NewPlanRequiredError(string(userPlan), string(p.PlanRequired))
	}
	return &p, nil
}

// SearchPosts finds published posts matching the query. Elasticsearch is
// tried first; any failure falls back to a SQL ILIKE scan so search never
// breaks when the cluster is down.
func (s *Service) SearchPosts(ctx context.Context, userPlan models.Plan, query string) ([]models.LibraryPost, error) {
	if query == "" {
		return s.ListPosts(ctx, userPlan)
	}

	if s.searcher != nil {
		posts, err := s.searchES(ctx, query)
		if err == nil {
			return lockPosts(posts, userPlan), nil
		}
		metrics.SearchFallbacksTotal.Inc()
		s.logger.Warn("elasticsearch search failed, falling back to SQL", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}

	posts, err := s.searchSQL(ctx, query)
	if err != nil {
		return nil, err
	}
	return lockPosts(posts, userPlan), nil
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.LibraryPost `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *Service) searchES(ctx context.Context, query string) ([]models.LibraryPost, error) {
	esQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"title^2", "excerpt", "content", "category"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"published": true},
				},
			},
		},
		"size": 50,
	}

	var resp esSearchResponse
	if err := s.searcher.Search(ctx, s.index, esQuery, &resp); err != nil {
		return nil, err
	}

	posts := make([]models.LibraryPost, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		posts = append(posts, hit.Source)
	}
	return posts, nil
}

func (s *Service) searchSQL(ctx context.Context, query string) ([]models.LibraryPost, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.Query(ctx,
		`SELECT id, title, slug, excerpt, content, category, plan_required, published, created_at
		 FROM library_posts
		 WHERE published = TRUE AND (title ILIKE $1 OR excerpt ILIKE $1 OR content ILIKE $1 OR category ILIKE $1)
		 ORDER BY created_at DESC`, pattern)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (s *Service) publishedPosts(ctx context.Context) ([]models.LibraryPost, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, postsCacheKey); err == nil {
			var posts []models.LibraryPost
			if err := json.Unmarshal([]byte(raw), &posts); err == nil {
				metrics.CacheHitsTotal.WithLabelValues("library_posts").Inc()
				return posts, nil
			}
		}
		metrics.CacheMissesTotal.WithLabelValues("library_posts").Inc()
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, title, slug, excerpt, content, category, plan_required, published, created_at
		 FROM library_posts WHERE published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(posts); err == nil {
			ttl := time.Duration(s.cfg.CacheTTL) * time.Second
			if err := s.cache.Set(ctx, postsCacheKey, data, ttl); err != nil {
				s.logger.Warn("failed to cache library posts", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return posts, nil
}

func collectPosts(rows *sql.Rows) ([]models.LibraryPost, error) {
	posts := []models.LibraryPost{}
	for rows.Next() {
		var p models.LibraryPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Category, &p.PlanRequired, &p.Published, &p.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return posts, nil
}

func lockPosts(posts []models.LibraryPost, userPlan models.Plan) []models.LibraryPost {
	out := make([]models.LibraryPost, len(posts))
	for i, p := range posts {
		p.Locked = entitlement.IsLocked(userPlan, p.PlanRequired)
		if p.Locked {
			p.Content = ""
		}
		out[i] = p
	}
	return out
}

// ==========================
// Lessons, snippets and tips
// ==========================

// ListLessons returns all lessons with lock flags. Locked lessons lose
// their video URL.
func (s *Service) ListLessons(ctx context.Context, userPlan models.Plan) ([]models.Lesson, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, video_url, duration, is_premium, created_at
		 FROM lessons ORDER BY created_at ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		var l models.Lesson
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.VideoURL, &l.Duration, &l.IsPremium, &l.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		l.Locked = entitlement.IsPremiumLocked(userPlan, l.IsPremium)
		if l.Locked {
			l.VideoURL = ""
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return lessons, nil
}

// ListSnippets returns all code snippets with lock flags. Locked snippets
// lose their code.
func (s *Service) ListSnippets(ctx context.Context, userPlan models.Plan) ([]models.CodeSnippet, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, language, code, is_premium, created_at
		 FROM code_snippets ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	snippets := []models.CodeSnippet{}
	for rows.Next() {
		var sn models.CodeSnippet
		if err := rows.Scan(&sn.ID, &sn.Title, &sn.Description, &sn.Language, &sn.Code, &sn.IsPremium, &sn.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		sn.Locked = entitlement.IsPremiumLocked(userPlan, sn.IsPremium)
		if sn.Locked {
			sn.Code = ""
		}
		snippets = append(snippets, sn)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return snippets, nil
}

// ListTips returns all tips with lock flags. Locked tips lose their body.
func (s *Service) ListTips(ctx context.Context, userPlan models.Plan) ([]models.Tip, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, content, category, is_premium, created_at
		 FROM tips ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	tips := []models.Tip{}
	for rows.Next() {
		var tip models.Tip
		if err := rows.Scan(&tip.ID, &tip.Title, &tip.Content, &tip.Category, &tip.IsPremium, &tip.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		tip.Locked = entitlement.IsPremiumLocked(userPlan, tip.IsPremium)
		if tip.Locked {
			tip.Content = ""
		}
		tips = append(tips, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return tips, nil
}
