package briefing

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/metrics"
	"bcstudio-server/internal/models"
)

const publicCachePrefix = "briefing:public:"

// Service owns the briefing form lifecycle: creation by a subscriber,
// public fetch and one-shot submission by the end client, and prompt
// compilation from the submitted answers.
type Service struct {
	db     *database.PostgresClient
	cache  *database.RedisClient
	cfg    config.BriefingConfig
	logger logger.Logger
}

// NewService creates a briefing service. cache may be nil, in which case
// public fetches always hit Postgres.
func NewService(db *database.PostgresClient, cache *database.RedisClient, cfg config.BriefingConfig, log logger.Logger) *Service {
	return &Service{db: db, cache: cache, cfg: cfg, logger: log}
}

// CreateInput carries the subscriber-chosen fields of a new briefing.
type CreateInput struct {
	ClientID *string         `json:"client_id,omitempty"`
	PageType models.PageType `json:"page_type"`
	Niche    string          `json:"niche"`
	Title    string          `json:"title,omitempty"`
}

// Create inserts a new briefing form with a fresh share token.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*models.BriefingForm, error) {
	if !in.PageType.Valid() {
		return nil, errors.NewValidationError("Tipo de página inválido", fmt.Sprintf("page_type: %s", in.PageType))
	}
	if in.Niche == "" {
		return nil, errors.NewValidationError("Nicho é obrigatório", "niche: empty")
	}

	form := &models.BriefingForm{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		ClientID:      in.ClientID,
		Token:         uuid.NewString(),
		PageType:      in.PageType,
		NicheSelected: in.Niche,
		Title:         in.Title,
		CreatedAt:     time.Now().UTC(),
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO briefing_forms (id, owner_id, client_id, token, page_type, niche_selected, title, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		form.ID, form.OwnerID, form.ClientID, form.Token, form.PageType, form.NicheSelected, form.Title, form.CreatedAt)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	s.logger.Info("briefing created", map[string]interface{}{
		"briefing_id": form.ID,
		"page_type":   string(form.PageType),
		"niche":       form.NicheSelected,
	})
	return form, nil
}

// ListByOwner returns the owner's briefings, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]models.BriefingForm, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, owner_id, client_id, token, page_type, niche_selected, title, responses, submitted_at, created_at
		 FROM briefing_forms WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	forms := []models.BriefingForm{}
	for rows.Next() {
		form, err := scanBriefing(rows)
		if err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		forms = append(forms, *form)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return forms, nil
}

// GetByID returns one briefing scoped to its owner. Missing and unowned
// briefings are indistinguishable to the caller.
func (s *Service) GetByID(ctx context.Context, ownerID, id string) (*models.BriefingForm, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, owner_id, client_id, token, page_type, niche_selected, title, responses, submitted_at, created_at
		 FROM briefing_forms WHERE id = $1 AND owner_id = $2`, id, ownerID)

	form, err := scanBriefing(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("briefing")
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return form, nil
}

// Delete removes an owner's briefing and drops its public cache entry.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	var token string
	err := s.db.QueryRow(ctx,
		`DELETE FROM briefing_forms WHERE id = $1 AND owner_id = $2 RETURNING token`, id, ownerID).Scan(&token)
	if err == sql.ErrNoRows {
		return errors.NewNotFoundError("briefing")
	}
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	s.invalidatePublic(ctx, token)
	return nil
}

// PublicForm is the unauthenticated view of a briefing handed to the end
// client. It never exposes the owner or internal ids.
type PublicForm struct {
	Token     string            `json:"token"`
	PageType  models.PageType   `json:"page_type"`
	PageLabel string            `json:"page_label"`
	Niche     string            `json:"niche"`
	Title     string            `json:"title,omitempty"`
	Submitted bool              `json:"submitted"`
	Questions []models.Question `json:"questions"`
}

// PublicByToken resolves a share token into the public form view, cached
// in Redis for the configured TTL.
func (s *Service) PublicByToken(ctx context.Context, token string) (*PublicForm, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, publicCachePrefix+token); err == nil {
			var view PublicForm
			if err := json.Unmarshal([]byte(raw), &view); err == nil {
				metrics.CacheHitsTotal.WithLabelValues("briefing_public").Inc()
				return &view, nil
			}
		}
		metrics.CacheMissesTotal.WithLabelValues("briefing_public").Inc()
	}

	row := s.db.QueryRow(ctx,
		`SELECT id, owner_id, client_id, token, page_type, niche_selected, title, responses, submitted_at, created_at
		 FROM briefing_forms WHERE token = $1`, token)

	form, err := scanBriefing(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("briefing")
	}
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	view := &PublicForm{
		Token:     form.Token,
		PageType:  form.PageType,
		PageLabel: models.PageTypeLabels[form.PageType],
		Niche:     form.NicheSelected,
		Title:     form.Title,
		Submitted: form.Submitted(),
		Questions: Questions(form.PageType, form.NicheSelected),
	}

	if s.cache != nil && !view.Submitted {
		if data, err := json.Marshal(view); err == nil {
			ttl := time.Duration(s.cfg.PublicCacheTTL) * time.Second
			if err := s.cache.Set(ctx, publicCachePrefix+token, data, ttl); err != nil {
				s.logger.Warn("failed to cache public briefing", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return view, nil
}

// Submit records the end client's answers exactly once. The answers are
// stored as received; a second submission fails with ALREADY_SUBMITTED no
// matter what it contains. The updated form is returned so callers can
// notify the owner.
func (s *Service) Submit(ctx context.Context, token string, responses map[string]string) (*models.BriefingForm, error) {
	if len(responses) == 0 {
		metrics.BriefingSubmissionsTotal.WithLabelValues("invalid").Inc()
		return nil, errors.NewValidationError("Respostas são obrigatórias", "responses: empty")
	}

	raw, err := json.Marshal(responses)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	var (
		form  models.BriefingForm
		title sql.NullString
	)
	err = s.db.QueryRow(ctx,
		`UPDATE briefing_forms SET responses = $1, submitted_at = $2
		 WHERE token = $3 AND submitted_at IS NULL
		 RETURNING id, owner_id, title`,
		raw, time.Now().UTC(), token).Scan(&form.ID, &form.OwnerID, &title)
	if err == sql.ErrNoRows {
		var submittedAt sql.NullTime
		err := s.db.QueryRow(ctx,
			`SELECT submitted_at FROM briefing_forms WHERE token = $1`, token).Scan(&submittedAt)
		if err == sql.ErrNoRows {
			metrics.BriefingSubmissionsTotal.WithLabelValues("not_found").Inc()
			return nil, errors.NewNotFoundError("briefing")
		}
		if err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		metrics.BriefingSubmissionsTotal.WithLabelValues("duplicate").Inc()
		return nil, errors.NewAlreadySubmittedError(token)
	}
	if err != nil {
		metrics.BriefingSubmissionsTotal.WithLabelValues("error").Inc()
		return nil, errors.NewDatabaseError(err)
	}
	form.Token = token
	form.Title = title.String
	form.Responses = raw

	s.invalidatePublic(ctx, token)
	metrics.BriefingSubmissionsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info("briefing submitted", map[string]interface{}{"token": token, "answers": len(responses)})
	return &form, nil
}

// OrderedResponses turns the stored answers into a deterministic entry
// slice: question declaration order first, then any unrecognized keys in
// lexical order.
func OrderedResponses(form *models.BriefingForm) ([]models.ResponseEntry, error) {
	if len(form.Responses) == 0 {
		return nil, nil
	}

	answers := map[string]string{}
	if err := json.Unmarshal(form.Responses, &answers); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}

	entries := make([]models.ResponseEntry, 0, len(answers))
	seen := make(map[string]bool, len(answers))
	for _, q := range Questions(form.PageType, form.NicheSelected) {
		if v, ok := answers[q.ID]; ok {
			entries = append(entries, models.ResponseEntry{Key: q.ID, Value: v})
			seen[q.ID] = true
		}
	}

	extras := make([]string, 0)
	for k := range answers {
		if !seen[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		entries = append(entries, models.ResponseEntry{Key: k, Value: answers[k]})
	}
	return entries, nil
}

// Prompt compiles the copywriting prompt for a submitted briefing.
func (s *Service) Prompt(ctx context.Context, ownerID, id string) (string, error) {
	form, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	if !form.Submitted() {
		return "", errors.NewValidationError("Briefing ainda não foi respondido", fmt.Sprintf("briefing: %s", id))
	}

	entries, err := OrderedResponses(form)
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	return CompilePrompt(form.PageType, form.NicheSelected, entries), nil
}

func (s *Service) invalidatePublic(ctx context.Context, token string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, publicCachePrefix+token); err != nil {
		s.logger.Warn("failed to invalidate public briefing cache", map[string]interface{}{"error": err.Error()})
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBriefing(row rowScanner) (*models.BriefingForm, error) {
	var (
		form        models.BriefingForm
		clientID    sql.NullString
		title       sql.NullString
		responses   []byte
		submittedAt sql.NullTime
	)
	err := row.Scan(&form.ID, &form.OwnerID, &clientID, &form.Token, &form.PageType,
		&form.NicheSelected, &title, &responses, &submittedAt, &form.CreatedAt)
	if err != nil {
		return nil, err
	}
	if clientID.Valid {
		form.ClientID = &clientID.String
	}
	form.Title = title.String
	form.Responses = responses
	if submittedAt.Valid {
		t := submittedAt.Time
		form.SubmittedAt = &t
	}
	return &form, nil
}
