package copygen

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"bcstudio-server/internal/briefing"
	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/metrics"
	"bcstudio-server/internal/entitlement"
	"bcstudio-server/internal/models"
)

const systemPrompt = `Você é um especialista em copywriting para websites e landing pages no Brasil.
Crie textos persuasivos, profissionais e adaptados ao nicho informado.
Use português brasileiro coloquial mas profissional.
Não use asteriscos ou markdown — use apenas texto limpo com quebras de linha.`

var copyTypeInstructions = map[models.PageType]string{
	models.PageTypeLandingPage: `Crie uma copy profissional para Landing Page com as seguintes seções:
1. HEADLINE PRINCIPAL (impactante, máx 10 palavras)
2. SUBTÍTULO (reforça o valor, máx 20 palavras)
3. SEÇÃO DE BENEFÍCIOS (3-5 benefícios no formato "✓ benefício")
4. PROVA SOCIAL (1 depoimento fictício mas realista)
5. CHAMADA PARA AÇÃO - CTA (frase de ação + botão sugerido)

Seja direto, persuasivo e voltado para conversão.`,

	models.PageTypeOnePage: `Crie uma copy completa para uma One Page com as seguintes seções:
1. HERO (headline + subtítulo + CTA)
2. SOBRE (história e missão da empresa)
3. SERVIÇOS/PRODUTOS (descrição dos 3 principais)
4. DIFERENCIAIS (3 razões para escolher)
5. DEPOIMENTOS (2 depoimentos realistas)
6. CONTATO (texto de encerramento + CTA)

Use linguagem profissional e envolvente.`,

	models.PageTypeSalesPage: `Crie uma copy longa de vendas (Sales Page) com as seguintes seções:
1. HEADLINE PODEROSA
2. PROBLEMA (dor que o cliente sente)
3. AGITAÇÃO (consequências de não resolver)
4. SOLUÇÃO (como o produto/serviço resolve)
5. BENEFÍCIOS DETALHADOS (5-7 itens)
6. PROVA SOCIAL (2-3 depoimentos)
7. OFERTA (o que está incluso)
8. GARANTIA
9. CTA FINAL (urgência e ação)

Use técnicas de copywriting (AIDA, PAS) e seja persuasivo sem ser agressivo.`,
}

// Service generates and stores copies. When no CompletionClient is
// configured it falls back to demo mode instead of failing.
type Service struct {
	db     *database.PostgresClient
	client CompletionClient
	logger logger.Logger
}

// NewService creates a copy generation service. client may be nil, which
// selects demo mode for every generation.
func NewService(db *database.PostgresClient, client CompletionClient, log logger.Logger) *Service {
	return &Service{db: db, client: client, logger: log}
}

// GenerateInput carries one generation request.
type GenerateInput struct {
	BriefingID *string           `json:"briefing_id,omitempty"`
	ClientID   *string           `json:"client_id,omitempty"`
	ClientName string            `json:"client_name,omitempty"`
	Niche      string            `json:"niche"`
	CopyType   models.PageType   `json:"copy_type"`
	Title      string            `json:"title,omitempty"`
	Responses  map[string]string `json:"responses"`
}

func (s *Service) requirePro(owner *models.Profile) error {
	if entitlement.IsLocked(owner.Plan, models.PlanPro) {
		return errors.NewPlanRequiredError(string(owner.Plan), string(models.PlanPro))
	}
	return nil
}

// Generate produces one copy and persists it. Generation is a pro feature;
// it is attempted exactly once, and on provider failure the caller gets
// GENERATION_FAILED and may try again manually.
func (s *Service) Generate(ctx context.Context, owner *models.Profile, in GenerateInput) (*models.GeneratedCopy, error) {
	if err := s.requirePro(owner); err != nil {
		return nil, err
	}
	if len(in.Responses) == 0 || in.Niche == "" || !in.CopyType.Valid() {
		return nil, errors.NewValidationError("Dados incompletos", "responses, niche and copy_type are required")
	}

	var (
		content string
		mode    = "live"
	)
	if s.client == nil {
		mode = "demo"
		content = DemoCopy(in.CopyType, in.Responses, in.Niche, in.ClientName)
	} else {
		userPrompt := buildUserPrompt(in)
		generated, err := s.client.Complete(ctx, systemPrompt, userPrompt)
		if err != nil {
			metrics.CopyGenerationTotal.WithLabelValues(mode, "error").Inc()
			s.logger.Error("copy generation failed", map[string]interface{}{
				"copy_type": string(in.CopyType),
				"error":     err.Error(),
			})
			return nil, errors.NewGenerationFailedError(err)
		}
		content = generated
	}

	title := in.Title
	if title == "" {
		title = fmt.Sprintf("%s - %s", models.PageTypeLabels[in.CopyType], in.Niche)
	}

	record := &models.GeneratedCopy{
		ID:         uuid.NewString(),
		OwnerID:    owner.ID,
		ClientID:   in.ClientID,
		BriefingID: in.BriefingID,
		CopyType:   in.CopyType,
		Title:      title,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO generated_copies (id, owner_id, client_id, briefing_id, copy_type, title, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.OwnerID, record.ClientID, record.BriefingID, record.CopyType, record.Title, record.Content, record.CreatedAt)
	if err != nil {
		metrics.CopyGenerationTotal.WithLabelValues(mode, "error").Inc()
		return nil, errors.NewDatabaseError(err)
	}

	metrics.CopyGenerationTotal.WithLabelValues(mode, "success").Inc()
	s.logger.Info("copy generated", map[string]interface{}{
		"copy_id":   record.ID,
		"copy_type": string(record.CopyType),
		"mode":      mode,
	})
	return record, nil
}

// buildUserPrompt assembles the briefing context in question declaration
// order so the same request always yields the same prompt.
func buildUserPrompt(in GenerateInput) string {
	lines := make([]string, 0, len(in.Responses))
	seen := make(map[string]bool, len(in.Responses))
	for _, q := range briefing.Questions(in.CopyType, in.Niche) {
		if v, ok := in.Responses[q.ID]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", q.ID, v))
			seen[q.ID] = true
		}
	}
	extras := make([]string, 0)
	for k := range in.Responses {
		if !seen[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		lines = append(lines, fmt.Sprintf("%s: %s", k, in.Responses[k]))
	}

	return fmt.Sprintf(`Nicho: %s
Cliente: %s

INFORMAÇÕES DO BRIEFING:
%s

INSTRUÇÃO:
%s`, in.Niche, in.ClientName, strings.Join(lines, "\n"), copyTypeInstructions[in.CopyType])
}

// ListByOwner returns the owner's saved copies, newest first. Content is
// included; lists are small per account.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]models.GeneratedCopy, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, owner_id, client_id, briefing_id, copy_type, title, content, created_at
		 FROM generated_copies WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	defer rows.Close()

	copies := []models.GeneratedCopy{}
	for rows.Next() {
		var (
			c          models.GeneratedCopy
			clientID   sql.NullString
			briefingID sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.OwnerID, &clientID, &briefingID, &c.CopyType, &c.Title, &c.Content, &c.CreatedAt); err != nil {
			return nil, errors.NewDatabaseError(err)
		}
		if clientID.Valid {
			c.ClientID = &clientID.String
		}
		if briefingID.Valid {
			c.BriefingID = &briefingID.String
		}
		copies = append(copies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return copies, nil
}

// Delete removes an owner's saved copy.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	res, err := s.db.Exec(ctx,
		`DELETE FROM generated_copies WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("copy")
	}
	return nil
}
