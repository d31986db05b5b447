package briefing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bcstudio-server/internal/models"
)

func TestCompilePromptHeader(t *testing.T) {
	prompt := CompilePrompt(models.PageTypeLandingPage, "Clínica / Saúde", []models.ResponseEntry{
		{Key: "business_name", Value: "Clínica Bem Estar"},
	})

	assert.Contains(t, prompt, "Escreva uma copy profissional e persuasiva para Landing Page no nicho: Clínica / Saúde.")
	assert.Contains(t, prompt, "TIPO DE PÁGINA: Landing Page")
	assert.Contains(t, prompt, "NICHO: Clínica / Saúde")
	assert.Contains(t, prompt, "BRIEFING DO CLIENTE")
	assert.Contains(t, prompt, "ESTRUTURA DA LANDING PAGE:")
}

func TestCompilePromptEntryFormatting(t *testing.T) {
	prompt := CompilePrompt(models.PageTypeOnePage, "Advocacia / Jurídico", []models.ResponseEntry{
		{Key: "business_name", Value: "Lima & Associados"},
		{Key: "history_mission", Value: "Fundado em 2009"},
	})

	assert.Contains(t, prompt, "BUSINESS NAME:\nLima & Associados")
	assert.Contains(t, prompt, "HISTORY MISSION:\nFundado em 2009")
	assert.Contains(t, prompt, "ESTRUTURA DO ONE PAGE:")
}

func TestCompilePromptSkipsBlankValues(t *testing.T) {
	prompt := CompilePrompt(models.PageTypeSalesPage, "Infoprodutos / Cursos", []models.ResponseEntry{
		{Key: "product_name", Value: "Método Copy Pro"},
		{Key: "avatar", Value: "   "},
		{Key: "problem", Value: ""},
		{Key: "offer", Value: "8 módulos"},
	})

	assert.Contains(t, prompt, "PRODUCT NAME:\nMétodo Copy Pro")
	assert.Contains(t, prompt, "OFFER:\n8 módulos")
	assert.NotContains(t, prompt, "AVATAR:")
	assert.NotContains(t, prompt, "PROBLEM:")
}

func TestCompilePromptPreservesEntryOrder(t *testing.T) {
	prompt := CompilePrompt(models.PageTypeSalesPage, "Infoprodutos / Cursos", []models.ResponseEntry{
		{Key: "product_name", Value: "A"},
		{Key: "avatar", Value: "B"},
		{Key: "offer", Value: "C"},
	})

	iProduct := strings.Index(prompt, "PRODUCT NAME:")
	iAvatar := strings.Index(prompt, "AVATAR:")
	iOffer := strings.Index(prompt, "OFFER:")
	assert.True(t, iProduct < iAvatar && iAvatar < iOffer)
}

func TestCompilePromptDeterministic(t *testing.T) {
	entries := []models.ResponseEntry{
		{Key: "business_name", Value: "Studio Alpha"},
		{Key: "avatar", Value: "Homens 40+"},
	}
	first := CompilePrompt(models.PageTypeLandingPage, "Academia / Personal / Nutrição", entries)
	second := CompilePrompt(models.PageTypeLandingPage, "Academia / Personal / Nutrição", entries)
	assert.Equal(t, first, second)
}

func TestCompilePromptStructurePerPageType(t *testing.T) {
	tests := []struct {
		pageType models.PageType
		want     string
	}{
		{models.PageTypeLandingPage, "ESTRUTURA DA LANDING PAGE:"},
		{models.PageTypeOnePage, "ESTRUTURA DO ONE PAGE:"},
		{models.PageTypeSalesPage, "ESTRUTURA DA PÁGINA DE VENDAS (formato longo):"},
	}
	for _, tt := range tests {
		t.Run(string(tt.pageType), func(t *testing.T) {
			prompt := CompilePrompt(tt.pageType, "Outro", nil)
			assert.Contains(t, prompt, tt.want)
		})
	}
}
