package copygen

import (
	"fmt"

	"bcstudio-server/internal/models"
)

const demoNotice = "---\n⚠️ MODO DEMONSTRAÇÃO — Configure a OPENAI_API_KEY no .env para gerar copies personalizadas com IA."

// DemoCopy builds a deterministic placeholder copy from the briefing
// answers. It is used whenever no completion API key is configured so the
// product keeps working end to end.
func DemoCopy(copyType models.PageType, responses map[string]string, niche, clientName string) string {
	name := responses["business_name"]
	if name == "" {
		name = clientName
	}
	description := responses["description"]
	if description == "" {
		description = responses["services"]
	}
	audience := responses["target_audience"]
	if audience == "" {
		audience = "seus clientes"
	}
	cta := responses["cta"]
	if cta == "" {
		cta = "Entre em contato"
	}

	switch copyType {
	case models.PageTypeLandingPage:
		return fmt.Sprintf(`HEADLINE PRINCIPAL
%[1]s — Transformando %[2]s com qualidade e resultado

SUBTÍTULO
Soluções completas para %[3]s que buscam excelência.

BENEFÍCIOS
✓ Atendimento personalizado para cada cliente
✓ Resultados comprovados com décadas de experiência
✓ Suporte completo do início ao fim do projeto
✓ Preços justos e transparentes
✓ Satisfação garantida ou seu dinheiro de volta

DEPOIMENTO
"Contratei os serviços de %[1]s e fiquei impressionado com o profissionalismo e os resultados. Superou todas as minhas expectativas!"
— João Silva, cliente satisfeito

CHAMADA PARA AÇÃO
Não perca mais tempo. %[4]s agora e descubra como podemos transformar o seu negócio.
[BOTÃO: %[4]s →]

%[5]s`, name, niche, audience, cta, demoNotice)

	case models.PageTypeSalesPage:
		return fmt.Sprintf(`HEADLINE
Descubra Como %[1]s Está Ajudando %[3]s a Conquistar Resultados Extraordinários

PROBLEMA
Você está cansado de %[2]s que não entregam o que prometem? Que cobram caro e somem quando o problema aparece?

AGITAÇÃO
Cada dia sem a solução certa é um dia perdendo dinheiro, oportunidades e clientes para a concorrência.

SOLUÇÃO
%[1]s chegou para mudar isso. %[6]s

BENEFÍCIOS
1. Atendimento 100%% personalizado
2. Profissionais com vasta experiência no setor
3. Resultados mensuráveis e comprovados
4. Suporte completo durante todo o processo
5. Investimento com retorno garantido

DEPOIMENTOS
"%[1]s transformou completamente minha visão. Recomendo a todos!" — Maria Costa
"Profissionalismo, agilidade e resultado. Melhor investimento que fiz!" — Carlos Lima

OFERTA
Ao contratar %[1]s você recebe:
- Consulta inicial gratuita
- Proposta personalizada
- Acompanhamento completo
- Garantia de satisfação

GARANTIA
Se você não ficar satisfeito nos primeiros 30 dias, devolvemos seu investimento integralmente.

CTA FINAL
Não deixe para amanhã o que pode mudar seu negócio hoje.
[BOTÃO: %[4]s AGORA →]

%[5]s`, name, niche, audience, cta, demoNotice, description)

	default:
		return fmt.Sprintf(`HERO
%[1]s — %[6]s
Para %[3]s que buscam qualidade e resultado.
[CTA: %[4]s]

SOBRE
Somos especialistas em %[2]s com foco total na satisfação do cliente.

SERVIÇOS
1. Consulta personalizada
2. Execução com excelência
3. Acompanhamento e suporte

DIFERENCIAIS
• Experiência comprovada no setor
• Atendimento humanizado e próximo
• Resultados que falam por si

DEPOIMENTOS
"Excelente serviço! %[1]s superou minhas expectativas." — Ana Rodrigues
"Recomendo de olhos fechados. Qualidade e seriedade." — Pedro Alves

CONTATO
Pronto para dar o próximo passo? %[4]s e vamos conversar!

%[5]s`, name, niche, audience, cta, demoNotice, description)
	}
}
