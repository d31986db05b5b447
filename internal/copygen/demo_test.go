package copygen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bcstudio-server/internal/models"
)

func TestDemoCopyLandingPage(t *testing.T) {
	out := DemoCopy(models.PageTypeLandingPage, map[string]string{
		"business_name": "Clínica Bem Estar",
		"cta":           "Agende sua avaliação",
	}, "Clínica / Saúde", "")

	assert.Contains(t, out, "HEADLINE PRINCIPAL")
	assert.Contains(t, out, "Clínica Bem Estar — Transformando Clínica / Saúde")
	assert.Contains(t, out, "[BOTÃO: Agende sua avaliação →]")
	assert.Contains(t, out, "MODO DEMONSTRAÇÃO")
}

func TestDemoCopySalesPage(t *testing.T) {
	out := DemoCopy(models.PageTypeSalesPage, map[string]string{
		"business_name": "Método X",
		"description":   "Mentoria de vendas",
	}, "Infoprodutos / Cursos", "")

	assert.Contains(t, out, "HEADLINE")
	assert.Contains(t, out, "PROBLEMA")
	assert.Contains(t, out, "GARANTIA")
	assert.Contains(t, out, "Método X chegou para mudar isso. Mentoria de vendas")
	assert.Contains(t, out, "MODO DEMONSTRAÇÃO")
}

func TestDemoCopyDefaultsAndFallbacks(t *testing.T) {
	out := DemoCopy(models.PageTypeOnePage, map[string]string{
		"services": "Criação de sites",
	}, "Outro", "Cliente Fulano")

	// business_name falls back to the client name, description to services
	assert.Contains(t, out, "Cliente Fulano — Criação de sites")
	assert.Contains(t, out, "Para seus clientes que buscam")
	assert.Contains(t, out, "[CTA: Entre em contato]")
}

func TestDemoCopyDeterministic(t *testing.T) {
	responses := map[string]string{"business_name": "Studio Alpha"}
	first := DemoCopy(models.PageTypeLandingPage, responses, "Outro", "")
	second := DemoCopy(models.PageTypeLandingPage, responses, "Outro", "")
	assert.Equal(t, first, second)
}
