package briefing

import (
	"fmt"
	"strings"

	"bcstudio-server/internal/models"
)

const promptSeparator = "═══════════════════════════════════════"

var structureBlocks = map[models.PageType]string{
	models.PageTypeLandingPage: `ESTRUTURA DA LANDING PAGE:
1. HEADLINE PRINCIPAL — impactante, focada na transformação, máx 12 palavras
2. SUBTÍTULO — reforça o benefício e quem é o público, máx 20 palavras
3. PROVA SOCIAL RÁPIDA — número ou depoimento curto para validar antes de mais nada
4. BENEFÍCIOS — 3 a 5 bullets no formato "✓ Benefício claro e direto" (venda resultado, não feature)
5. COMO FUNCIONA — 3 passos simples e sem jargão
6. QUEBRA DE OBJEÇÃO — parágrafo que antecipa e elimina o maior medo do cliente
7. SOBRE / AUTORIDADE — 2-3 linhas que constroem credibilidade (sem ser arrogante)
8. PROVA SOCIAL — 1 depoimento realista com nome, contexto e resultado específico
9. CTA COM URGÊNCIA — frase de ação + texto do botão + reforço de urgência`,

	models.PageTypeOnePage: `ESTRUTURA DO ONE PAGE:
1. HERO — Headline forte + subtítulo + CTA de contato (botão de WhatsApp/formulário)
2. SOBRE — Breve história, missão e propósito (humaniza a empresa)
3. SERVIÇOS — 3-4 serviços principais com título, descrição curta e benefício
4. DIFERENCIAIS — 3 razões concretas para escolher esta empresa (sem ser genérico)
5. NÚMEROS / RESULTADOS — dados que constroem credibilidade (anos, casos, clientes)
6. DEPOIMENTOS — 2-3 depoimentos com nome, contexto e transformação real
7. EQUIPE — Apresentação breve dos profissionais (se aplicável)
8. CONTATO / CTA FINAL — endereço, telefone, horários + botão de ação`,

	models.PageTypeSalesPage: `ESTRUTURA DA PÁGINA DE VENDAS (formato longo):
1. HEADLINE PODEROSA — foca no resultado final, não no produto
2. IDENTIFICAÇÃO COM O AVATAR — "Se você é [perfil específico] e sente [dor específica]..."
3. AGITAÇÃO DO PROBLEMA — aprofunda a dor com empatia e sem julgamento
4. PROMESSA + VIRADA — "Existe uma saída. E não é o que você está pensando."
5. SOLUÇÃO (MECANISMO ÚNICO) — apresenta o método com nome e lógica clara
6. AUTORIDADE — quem é você e por que pode entregar essa transformação
7. O QUE ESTÁ INCLUSO — lista completa da oferta (cria valor antes de mostrar preço)
8. PARA QUEM É (E PARA QUEM NÃO É) — qualificação honesta do público
9. PROVA SOCIAL — 2-3 cases detalhados com situação inicial, processo e resultado
10. QUEBRA DE OBJEÇÕES — FAQ com as 3 maiores barreiras
11. GARANTIA — redução de risco com linguagem de confiança
12. OFERTA E PREÇO — apresentação do valor percebido ANTES do número
13. CTA FINAL — urgência real + chamada direta para ação`,
}

// CompilePrompt turns a submitted briefing into the copywriting prompt sent
// to the completion provider. Entries keep their given order; blank values
// are skipped. The function is pure, the same inputs always produce the
// same prompt.
func CompilePrompt(pageType models.PageType, niche string, entries []models.ResponseEntry) string {
	typeLabel := models.PageTypeLabels[pageType]

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Value) == "" {
			continue
		}
		label := strings.ToUpper(strings.ReplaceAll(e.Key, "_", " "))
		blocks = append(blocks, fmt.Sprintf("%s:\n%s", label, e.Value))
	}
	lines := strings.Join(blocks, "\n\n")

	return fmt.Sprintf(`Você é um especialista em copywriting com foco em alta conversão para o mercado brasileiro.
Escreva uma copy profissional e persuasiva para %s no nicho: %s.

Use português brasileiro natural, direto e sem termos técnicos de marketing.
A copy deve soar como uma conversa real, não como publicidade genérica.
Seja específico — use as informações do briefing em cada seção.
Adapte o tom ao nicho e ao avatar descrito.

Não use asteriscos, hashtags, emojis ou formatação markdown — apenas texto limpo e estruturado.

%s
BRIEFING DO CLIENTE
%s
TIPO DE PÁGINA: %s
NICHO: %s

%s

%s
%s
%s

Importante: seja ultra específico. Use as informações do briefing em cada seção — nenhum parágrafo pode ser genérico. O leitor ideal deve sentir que a copy foi escrita especificamente para ele.`,
		typeLabel, niche,
		promptSeparator, promptSeparator,
		typeLabel, niche,
		lines,
		promptSeparator, structureBlocks[pageType], promptSeparator)
}
