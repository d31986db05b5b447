package copygen

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/models"
)

type stubClient struct {
	content    string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (c *stubClient) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	c.calls++
	c.lastSystem = systemPrompt
	c.lastUser = userPrompt
	if c.err != nil {
		return "", c.err
	}
	return c.content, nil
}

func newCopyService(t *testing.T, client CompletionClient) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(&database.PostgresClient{DB: db}, client, logger.NewNoOpLogger()), mock
}

func proOwner() *models.Profile {
	return &models.Profile{ID: "owner-1", Plan: models.PlanPro}
}

func validInput() GenerateInput {
	return GenerateInput{
		ClientName: "Studio Alpha",
		Niche:      "Academia / Personal / Nutrição",
		CopyType:   models.PageTypeLandingPage,
		Responses:  map[string]string{"business_name": "Studio Alpha", "avatar": "Homens 40+"},
	}
}

func TestGenerateRejectsIncompleteInput(t *testing.T) {
	svc, _ := newCopyService(t, nil)

	tests := []struct {
		name string
		in   GenerateInput
	}{
		{name: "no responses", in: GenerateInput{Niche: "Outro", CopyType: models.PageTypeOnePage}},
		{name: "no niche", in: GenerateInput{CopyType: models.PageTypeOnePage, Responses: map[string]string{"a": "b"}}},
		{name: "bad copy type", in: GenerateInput{Niche: "Outro", CopyType: "banner", Responses: map[string]string{"a": "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), proOwner(), tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeValidationFailed))
		})
	}
}

func TestGenerateRequiresProPlan(t *testing.T) {
	client := &stubClient{content: "nunca gerado"}
	svc, _ := newCopyService(t, client)

	for _, plan := range []models.Plan{models.PlanFree, models.PlanBasic, ""} {
		owner := &models.Profile{ID: "owner-1", Plan: plan}
		_, err := svc.Generate(context.Background(), owner, validInput())
		require.Error(t, err, string(plan))
		assert.True(t, errors.IsCode(err, errors.ErrCodePlanRequired), string(plan))
	}
	assert.Equal(t, 0, client.calls)
}

func TestGenerateDemoModeWithoutClient(t *testing.T) {
	svc, mock := newCopyService(t, nil)

	mock.ExpectExec("INSERT INTO generated_copies").
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := svc.Generate(context.Background(), proOwner(), validInput())
	require.NoError(t, err)
	assert.Contains(t, record.Content, "MODO DEMONSTRAÇÃO")
	assert.Contains(t, record.Content, "Studio Alpha")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateLiveMode(t *testing.T) {
	client := &stubClient{content: "HEADLINE\nCopy gerada pela IA"}
	svc, mock := newCopyService(t, client)

	mock.ExpectExec("INSERT INTO generated_copies").
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := svc.Generate(context.Background(), proOwner(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "HEADLINE\nCopy gerada pela IA", record.Content)
	assert.NotContains(t, record.Content, "MODO DEMONSTRAÇÃO")
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastSystem, "especialista em copywriting")
	assert.Contains(t, client.lastUser, "INFORMAÇÕES DO BRIEFING:")
	assert.Contains(t, client.lastUser, "business_name: Studio Alpha")
}

func TestGenerateProviderFailureIsNotRetried(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("upstream timeout")}
	svc, _ := newCopyService(t, client)

	_, err := svc.Generate(context.Background(), proOwner(), validInput())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGenerationFailed))
	assert.Equal(t, 1, client.calls)
}

func TestGenerateDefaultTitle(t *testing.T) {
	svc, mock := newCopyService(t, nil)

	mock.ExpectExec("INSERT INTO generated_copies").
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := svc.Generate(context.Background(), proOwner(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Landing Page - Academia / Personal / Nutrição", record.Title)
}

func TestBuildUserPromptDeterministicOrder(t *testing.T) {
	in := validInput()
	in.Responses["zz_custom"] = "extra"
	in.Responses["aa_custom"] = "extra"

	first := buildUserPrompt(in)
	second := buildUserPrompt(in)
	assert.Equal(t, first, second)

	iBusiness := strings.Index(first, "business_name:")
	iAvatar := strings.Index(first, "avatar:")
	iAA := strings.Index(first, "aa_custom:")
	iZZ := strings.Index(first, "zz_custom:")
	assert.True(t, iBusiness < iAvatar)
	assert.True(t, iAvatar < iAA && iAA < iZZ)
}

func TestBuildUserPromptInstructionPerCopyType(t *testing.T) {
	in := validInput()
	in.CopyType = models.PageTypeSalesPage
	prompt := buildUserPrompt(in)
	assert.Contains(t, prompt, "Crie uma copy longa de vendas")
	assert.Contains(t, prompt, "INSTRUÇÃO:")
}

func TestDeleteUnknownCopy(t *testing.T) {
	svc, mock := newCopyService(t, nil)

	mock.ExpectExec("DELETE FROM generated_copies").
		WithArgs("ghost", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), "owner-1", "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}
