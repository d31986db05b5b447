package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bcstudio-server/internal/models"
)

func sampleContract() *models.Contract {
	return &models.Contract{
		ID:                 "c-1",
		OwnerID:            "owner-1",
		ClientName:         "Maria Souza",
		ClientCPFCNPJ:      "123.456.789-00",
		ClientCity:         "Campinas",
		ClientState:        "SP",
		ServiceType:        "Criação de Landing Page",
		ServiceDescription: "Landing page com 5 seções, formulário e integração com WhatsApp.",
		Value:              900,
		PaymentType:        models.PaymentPixAVista,
		StartDate:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDays:       15,
		MaterialsDays:      7,
		MaintenanceDays:    30,
		CreatedAt:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func sampleWd() *models.WdProfile {
	return &models.WdProfile{
		Name:    "João Designer",
		CPFCNPJ: "987.654.321-00",
		City:    "São Paulo",
		State:   "SP",
		Email:   "joao@studio.com",
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{300, "R$ 300,00"},
		{1234.5, "R$ 1.234,50"},
		{900.0 / 3.0, "R$ 300,00"},
		{0.4, "R$ 0,40"},
		{1000000, "R$ 1.000.000,00"},
		{19.999, "R$ 20,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBRL(tt.value))
	}
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "16 de janeiro de 2025", formatLongDate(time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "01 de março de 2026", formatLongDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPaymentDescriptions(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*models.Contract)
		want         string
		wantFallback bool
	}{
		{
			name:   "pix a vista",
			mutate: func(c *models.Contract) { c.PaymentType = models.PaymentPixAVista },
			want:   "a ser pago via PIX, à vista, no ato da contratação.",
		},
		{
			name:   "cartao a vista",
			mutate: func(c *models.Contract) { c.PaymentType = models.PaymentCartaoAVista },
			want:   "a ser pago via cartão de crédito, à vista, no ato da contratação.",
		},
		{
			name: "parcelado sem juros divides value",
			mutate: func(c *models.Contract) {
				c.PaymentType = models.PaymentParceladoSemJuros
				c.Installments = 3
			},
			want: "a ser pago em 3x de R$ 300,00 via cartão de crédito, sem juros.",
		},
		{
			name: "parcelado com juros never shows parcel value",
			mutate: func(c *models.Contract) {
				c.PaymentType = models.PaymentParceladoComJuros
				c.Installments = 6
			},
			want: "a ser parcelado em 6x via cartão de crédito, com juros a cargo do CONTRATANTE.",
		},
		{
			name: "pix entrada with explicit entry and balance",
			mutate: func(c *models.Contract) {
				c.PaymentType = models.PaymentPixEntrada
				c.EntryValue = 400
			},
			want: "sendo R$ 400,00 pagos via PIX como entrada no ato da assinatura deste contrato e R$ 500,00 via PIX na entrega do projeto final.",
		},
		{
			name: "pix entrada without entry defaults to half",
			mutate: func(c *models.Contract) {
				c.PaymentType = models.PaymentPixEntrada
				c.EntryValue = 0
			},
			want: "sendo R$ 450,00 pagos via PIX como entrada no ato da assinatura deste contrato.",
		},
		{
			name:         "unrecognized type falls back to entry wording",
			mutate:       func(c *models.Contract) { c.PaymentType = "boleto" },
			want:         "sendo R$ 450,00 pagos via PIX como entrada no ato da assinatura deste contrato.",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sampleContract()
			tt.mutate(c)
			got, fallback := PaymentDescription(c)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

func TestRenderIsPure(t *testing.T) {
	c := sampleContract()
	wd := sampleWd()
	first, _ := Render(c, wd)
	second, _ := Render(c, wd)
	assert.Equal(t, first, second)
}

func TestRenderDeliveryDate(t *testing.T) {
	c := sampleContract()
	text, _ := Render(c, sampleWd())

	// 2025-01-01 + 15 days
	assert.Contains(t, text, "terá início em 01 de janeiro de 2025")
	assert.Contains(t, text, "entrega está prevista para 16 de janeiro de 2025 (15 dias corridos)")
}

func TestRenderAllClausesPresent(t *testing.T) {
	text, _ := Render(sampleContract(), sampleWd())

	for _, want := range []string{
		"1º — DAS PARTES",
		"2º — DA PRESTAÇÃO DE SERVIÇOS",
		"3º — DAS CONDIÇÕES",
		"4º — DOS PRAZOS",
		"5º — DOS VALORES E FORMA DE PAGAMENTO",
		"6º — DA PROTEÇÃO DE DADOS (LGPD)",
		"7º — DOS DIREITOS AUTORAIS E PROPRIEDADE INTELECTUAL",
		"8º — DA CONFIDENCIALIDADE",
		"9º — DA RESCISÃO",
		"10º — DAS DISPOSIÇÕES GERAIS",
		"Lei nº 13.709/2018",
		"TESTEMUNHA 01",
		"TESTEMUNHA 02",
	} {
		assert.Contains(t, text, want)
	}
}

func TestRenderParties(t *testing.T) {
	text, _ := Render(sampleContract(), sampleWd())

	assert.Contains(t, text, "CONTRATADO(A): João Designer, portador(a) do CPF/CNPJ nº 987.654.321-00, São Paulo/SP, e-mail: joao@studio.com.")
	assert.Contains(t, text, "CONTRATANTE: Maria Souza, portador(a) do CPF/CNPJ nº 123.456.789-00, Campinas/SP.")
}

func TestRenderExcludedServices(t *testing.T) {
	c := sampleContract()
	c.ExcludedServices = []string{"hospedagem", "seo", "custom_item"}
	text, _ := Render(c, sampleWd())

	// known ids map to labels, unknown ids pass through
	assert.Contains(t, text, "Não estão incluídos no escopo deste contrato: Hospedagem, Otimização SEO avançada, custom_item.")
}

func TestRenderNoExcludedServicesOmitsClause(t *testing.T) {
	text, _ := Render(sampleContract(), sampleWd())
	assert.NotContains(t, text, "Não estão incluídos no escopo")
}

func TestRenderMissingProfilePlaceholders(t *testing.T) {
	text, _ := Render(sampleContract(), &models.WdProfile{})

	assert.Contains(t, text, "foro da comarca de _______________/__")
	assert.Contains(t, text, "_____________, 01 de janeiro de 2025")
	assert.Contains(t, text, "________________________________")
}

func TestRenderWitnessNames(t *testing.T) {
	c := sampleContract()
	c.Witness1 = "Pedro Alves"
	text, _ := Render(c, sampleWd())

	assert.Contains(t, text, "Pedro Alves\nTESTEMUNHA 01")
	assert.Contains(t, text, "________________________________\nTESTEMUNHA 02")
}

func TestRenderFallbackFlag(t *testing.T) {
	c := sampleContract()
	c.PaymentType = "cheque"
	_, fallback := Render(c, sampleWd())
	assert.True(t, fallback)

	_, fallback = Render(sampleContract(), sampleWd())
	assert.False(t, fallback)
}
