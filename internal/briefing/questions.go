// Package briefing implements the question bank, the prompt compiler and
// the briefing form lifecycle.
//
// Question lists are static and declaration-ordered: the order below drives
// both on-screen rendering and prompt compilation, so it must never be
// sorted or rebuilt from a map.
package briefing

import "bcstudio-server/internal/models"

// Niches selectable when creating a briefing. Free text is also accepted;
// only exact matches resolve to a niche-specific question list.
var Niches = []string{
	"Clínica / Saúde",
	"Advocacia / Jurídico",
	"Infoprodutos / Cursos",
	"Gestão de Tráfego / Marketing",
	"Academia / Personal / Nutrição",
	"Restaurante / Alimentação",
	"Imobiliária / Imóveis",
	"E-commerce / Loja Virtual",
	"Beleza / Estética",
	"Construção / Reforma",
	"Consultoria / Serviços",
	"Tecnologia / Software",
	"Fotografia / Vídeo",
	"Outro",
}

// PageTypeDescriptions maps page types to their pt-BR summaries.
var PageTypeDescriptions = map[models.PageType]string{
	models.PageTypeLandingPage: "Página de captura focada em gerar leads e conversões rápidas",
	models.PageTypeOnePage:     "Apresentação completa do negócio em uma única página",
	models.PageTypeSalesPage:   "Página longa e persuasiva focada em fechar vendas",
}

// ==========================
// Base questions per page type, used as fallback for niches without a
// specific list.
// ==========================

var baseLandingPage = []models.Question{
	{
		ID:          "business_name",
		Label:       "Nome do negócio / marca",
		Placeholder: "Ex: Studio Fit Personal, Dra. Ana Lima — Dermatologista",
	},
	{
		ID:          "avatar",
		Label:       "Descreva seu cliente ideal com detalhes",
		Placeholder: "Ex: Mulheres de 35 a 50 anos, casadas, com filhos, que trabalham em home office, sentem dor lombar crônica há mais de 2 anos e já tentaram academia sem sucesso",
		Rows:        3,
		Hint:        "Quanto mais específico, melhor a copy. Inclua: idade, gênero, situação de vida, maior dor/problema.",
	},
	{
		ID:          "transformation",
		Label:       "Qual a transformação ANTES e DEPOIS?",
		Placeholder: "ANTES: Vive com dor, evita atividades, tem medo de cirurgia\nDEPOIS: Dorme bem, volta a jogar com os filhos, sem remédio",
		Rows:        3,
		Hint:        "A copy mais poderosa vende o resultado, não o serviço. Descreva o estado ideal que o cliente alcança.",
	},
	{
		ID:          "unique_mechanism",
		Label:       "Qual o seu método / mecanismo único?",
		Placeholder: "Ex: Protocolo NeuroFit de 3 fases que trata a causa raiz da dor, não apenas o sintoma — diferente de academias que apenas fortalecem",
		Rows:        2,
		Hint:        "O que faz o seu método ser diferente de tudo que o cliente já tentou? Dê um nome se possível.",
	},
	{
		ID:          "main_cta",
		Label:       "Qual a ação principal (CTA)?",
		Placeholder: "Ex: Agendar avaliação gratuita de 30 min pelo WhatsApp",
	},
	{
		ID:          "authority",
		Label:       "Por que você / sua empresa é a pessoa certa para isso?",
		Placeholder: "Ex: 12 anos de experiência, CREFITO ativo, formação em Osteopatia pela USP, +800 pacientes tratados, cases publicados em revista especializada",
		Rows:        2,
		Hint:        "Credenciais, tempo de mercado, resultados já entregues, formações relevantes.",
	},
	{
		ID:          "social_proof",
		Label:       "Que provas sociais você tem com NÚMEROS?",
		Placeholder: "Ex: 847 pacientes atendidos, 94% de satisfação, \"eliminei a dor em 3 semanas\" — Marcos, 48 anos, engenheiro",
		Rows:        2,
		Hint:        "Números são mais convincentes que elogios vagos. Inclua depoimentos reais com nome e contexto.",
	},
	{
		ID:          "main_objection",
		Label:       "Qual a principal objeção / desculpa do cliente para não agir?",
		Placeholder: "Ex: \"Já tentei outras coisas e não funcionou\" / \"Não tenho tempo\" / \"Está caro\"",
		Hint:        "Qual o maior medo ou dúvida que paralisa seu cliente na hora de contratar?",
	},
	{
		ID:          "urgency",
		Label:       "Existe alguma urgência ou escassez real?",
		Placeholder: "Ex: Apenas 8 vagas no mês / Desconto de R$150 apenas até sexta-feira / Turma fecha em 48h",
		Hint:        "Urgência verdadeira. Não invente — o cliente percebe quando é falso.",
	},
	{
		ID:          "tone",
		Label:       "Qual o tom de comunicação ideal?",
		Placeholder: "Ex: Empático e próximo, como um amigo especialista que realmente se preocupa com o resultado",
	},
}

var baseOnePage = []models.Question{
	{
		ID:          "business_name",
		Label:       "Nome do negócio / marca",
		Placeholder: "Ex: Escritório Lima Advogados, Studio Glam — Ana Beatriz",
	},
	{
		ID:          "description",
		Label:       "O que a empresa faz? (seja completo)",
		Placeholder: "Ex: Escritório de advocacia trabalhista e previdenciária fundado em 2010, atende trabalhadores demitidos e aposentados do INSS em toda a região metropolitana de SP",
		Rows:        3,
	},
	{
		ID:          "avatar",
		Label:       "Quem é o cliente ideal?",
		Placeholder: "Ex: Trabalhadores de 30 a 60 anos demitidos nos últimos 2 anos, que desconfiam estar sendo prejudicados mas não sabem por onde começar",
		Rows:        2,
	},
	{
		ID:          "history_mission",
		Label:       "História e missão da empresa",
		Placeholder: "Ex: Fundada após o fundador vivenciar a injustiça na família — missão de devolver dignidade e direitos a quem trabalhou a vida toda",
		Rows:        2,
	},
	{
		ID:          "services",
		Label:       "Serviços / produtos principais (liste todos)",
		Placeholder: "Ex: 1. Defesa em demissão sem justa causa | 2. Revisão de benefício do INSS | 3. Reclamação trabalhista | 4. Consulta jurídica online",
		Rows:        3,
	},
	{
		ID:          "differentials",
		Label:       "Por que escolher vocês? (diferenciais reais)",
		Placeholder: "Ex: Sem honorários adiantados — só cobramos se ganharmos / Atendimento online para todo o Brasil / Mais de 1.200 casos ganhos",
		Rows:        2,
	},
	{
		ID:          "social_proof",
		Label:       "Provas sociais com números e depoimentos",
		Placeholder: "Ex: +1.200 casos ganhos, R$8M recuperados para clientes, \"recebi R$47k que nem sabia que tinha direito\" — José, 52 anos",
		Rows:        2,
	},
	{
		ID:          "contact_cta",
		Label:       "Como e onde o cliente entra em contato?",
		Placeholder: "Ex: WhatsApp (11) 99999-0000, formulário no site, visita ao escritório — Rua X, nº Y, SP",
	},
	{
		ID:          "tone",
		Label:       "Tom de comunicação",
		Placeholder: "Ex: Sério e confiável, mas acessível — sem juridiquês",
	},
}

var baseSalesPage = []models.Question{
	{
		ID:          "product_name",
		Label:       "Nome do produto / serviço / oferta",
		Placeholder: "Ex: Método Tráfego Premium, Mentoria Clínica 6 em 7, Curso Advocacia Digital",
	},
	{
		ID:          "avatar",
		Label:       "Para quem é EXATAMENTE? (avatar detalhado)",
		Placeholder: "Ex: Gestores de tráfego com 6+ meses de experiência, que faturam entre R$3k e R$8k/mês, trabalham sozinhos, sentem que estão num teto e não sabem como escalar sem trabalhar mais horas",
		Rows:        3,
		Hint:        "Quanto mais específico o avatar, mais a copy ressoa. Inclua: nível de experiência, faturamento atual, maior frustração.",
	},
	{
		ID:          "problem",
		Label:       "Qual o problema mais profundo do cliente?",
		Placeholder: "Ex: Trabalha 10h por dia, perde clientes toda hora porque não tem processo, cobra barato por medo de perder, sente que está num hamster sem saída",
		Rows:        3,
		Hint:        "Vá além do problema óbvio. Qual a dor emocional? O que o mantém acordado às 2h da manhã?",
	},
	{
		ID:          "agitation",
		Label:       "O que acontece se ele NÃO resolver isso agora?",
		Placeholder: "Ex: Continua preso no ciclo de cobrar barato → trabalhar muito → ter poucos resultados → perder clientes → baixar preço de novo. Daqui 1 ano estará exatamente no mesmo lugar, só mais cansado.",
		Rows:        2,
	},
	{
		ID:          "solution",
		Label:       "Como seu produto resolve o problema? (mecanismo único)",
		Placeholder: "Ex: O Método Escala Assimétrica tem 3 pilares: Precificação por resultado, Sistema de retenção com relatórios automatizados, e Script de vendas consultivo",
		Rows:        3,
		Hint:        "Explique o PORQUÊ funciona quando outras soluções falharam. Dê nome ao método se possível.",
	},
	{
		ID:          "transformation",
		Label:       "Qual a transformação completa em X tempo?",
		Placeholder: "Ex: Em 90 dias: cobrar R$2.500+/cliente com contrato de 6 meses, ter 3-5 clientes premium pagando recorrência, trabalhar máx 6h/dia",
		Rows:        2,
	},
	{
		ID:          "authority",
		Label:       "Quem vende e por que tem autoridade?",
		Placeholder: "Ex: Paulo Salave — 8 anos como gestor, construiu agência de R$0 a R$180k/mês, gerenciou R$4M em tráfego, hoje tem 3 funcionários e trabalha 4h/dia",
		Rows:        2,
	},
	{
		ID:          "social_proof",
		Label:       "Cases de alunos/clientes com resultados ESPECÍFICOS",
		Placeholder: "Ex: João foi de R$2k para R$15k/mês em 4 meses / Ana demitiu o patrão em 60 dias / Rodrigo tem hoje 7 clientes fixos sem prospectar",
		Rows:        3,
		Hint:        "O case mais poderoso: cliente parecido com o avatar que tinha o mesmo problema e conseguiu o resultado.",
	},
	{
		ID:          "objections",
		Label:       "Quais as 3 principais objeções? Como você as quebra?",
		Placeholder: "OBJ 1: \"Não tenho tempo\" → RESPOSTA: O método leva 3h/semana de implementação\nOBJ 2: \"Já tentei curso antes\" → RESPOSTA: 90% dos alunos que aplicam o módulo 2 fecham o 1º cliente em 30 dias\nOBJ 3: \"Está caro\" → RESPOSTA: 1 cliente feito com o método paga o curso inteiro",
		Rows:        4,
	},
	{
		ID:          "offer",
		Label:       "O que está incluso na oferta? (liste tudo)",
		Placeholder: "Ex: 6 módulos em vídeo HD / Comunidade no Telegram / 4 mentorias ao vivo / Templates de contrato e proposta / Bônus: Script de prospecção no DM",
		Rows:        3,
	},
	{
		ID:          "price_guarantee",
		Label:       "Preço, parcelamento e garantia",
		Placeholder: "Ex: R$1.497 à vista ou 12x R$147 / Garantia incondicional de 30 dias — se não gostar, devolvemos 100% sem perguntas",
	},
	{
		ID:          "urgency",
		Label:       "Urgência ou bônus por tempo limitado (real)",
		Placeholder: "Ex: Turma fecha domingo às 23h59 / Os 20 primeiros ganham sessão 1:1 de 1h comigo / Preço sobe R$400 na próxima turma",
	},
}

// ==========================
// Niche-specific questions, landing page
// ==========================

var landingPageNiche = map[string][]models.Question{

	"Clínica / Saúde": {
		{ID: "business_name", Label: "Nome da clínica / profissional de saúde", Placeholder: "Ex: Dra. Ana Lima — Dermatologista | Clínica Bem Estar Fisioterapia"},
		{ID: "specialty", Label: "Especialidade e procedimentos principais", Placeholder: "Ex: Dermatologia clínica e estética — Botox, preenchimento, peel químico, consultas de acne e manchas", Rows: 2},
		{ID: "avatar", Label: "Paciente ideal (avatar detalhado)", Placeholder: "Ex: Mulheres de 35 a 55 anos que perceberam sinais do envelhecimento, sentem vergonha do próprio rosto em fotos, buscam rejuvenescimento natural sem parecer \"feito\"", Rows: 3, Hint: "Inclua: idade, gênero, maior dor emocional com o problema."},
		{ID: "transformation", Label: "Antes e depois do tratamento", Placeholder: "ANTES: Insegura com manchas/rugas, evita fotos, se sente mais velha do que é\nDEPOIS: Pele renovada, autoestima recuperada, comentários de que parece mais jovem", Rows: 2},
		{ID: "unique_mechanism", Label: "Protocolo / método único que você usa", Placeholder: "Ex: Protocolo 360° que combina laser fracionado + ácido hialurônico + limpeza de pele — personalizado para cada biotipo. Resultado visível na primeira sessão.", Rows: 2},
		{ID: "authority", Label: "Formação, CRM/CREFITO e experiência", Placeholder: "Ex: CRM 12345, pós-graduação em Dermatologia Estética pela USP, 11 anos, +2.000 procedimentos realizados", Rows: 2},
		{ID: "social_proof", Label: "Depoimentos com transformação real", Placeholder: "Ex: \"Depois de 3 sessões voltei a me sentir bonita. Minha filha perguntou o que eu tinha feito diferente.\" — Carla, 47 anos, professora", Rows: 2},
		{ID: "main_objection", Label: "Principal objeção do paciente", Placeholder: "Ex: \"Tenho medo de ficar com aparência artificial\" / \"Não sei se funciona para o meu tipo de pele\""},
		{ID: "cta", Label: "CTA principal", Placeholder: "Ex: Agendar avaliação gratuita pelo WhatsApp para saber qual procedimento é ideal para você"},
		{ID: "urgency", Label: "Urgência ou disponibilidade limitada", Placeholder: "Ex: Agenda com apenas 6 novos pacientes/mês / Consulta de avaliação gratuita disponível até X"},
		{ID: "convenios", Label: "Convênios, localização e horários", Placeholder: "Ex: Particular e Unimed / Moema, SP / Seg a Sex 8h-18h, Sáb 8h-12h"},
	},

	"Advocacia / Jurídico": {
		{ID: "business_name", Label: "Nome do escritório / advogado(a)", Placeholder: "Ex: Dr. Carlos Lima | Escritório Lima & Associados — Direito Trabalhista"},
		{ID: "specialty", Label: "Área de atuação e tipos de casos", Placeholder: "Ex: Direito Trabalhista — demissão sem justa causa, assédio moral, rescisão indireta, FGTS, horas extras não pagas", Rows: 2},
		{ID: "avatar", Label: "Quem é seu cliente ideal e qual problema ele tem?", Placeholder: "Ex: Trabalhador com carteira assinada há 5+ anos, demitido sem aviso prévio, desconfia que a empresa não pagou tudo corretamente, sente raiva mas medo de \"brigar\" com empresa grande", Rows: 3},
		{ID: "transformation", Label: "O que o cliente conquista quando você ganha o caso?", Placeholder: "Ex: Recebe na conta o que é de direito (multa de 40% FGTS, aviso prévio, verbas rescisórias) + indenização por dano moral, sem precisar enfrentar o ex-patrão pessoalmente", Rows: 2},
		{ID: "authority", Label: "Formação, OAB, anos de experiência e conquistas", Placeholder: "Ex: OAB/SP 123.456, 15 anos de advocacia trabalhista, pós-graduado pela FGV, +800 processos conduzidos, taxa de êxito de 87%", Rows: 2},
		{ID: "fees_model", Label: "Modelo de honorários (quebra objeção de custo)", Placeholder: "Ex: Trabalhamos com honorários de êxito — você não paga nada adiantado. Só cobramos uma porcentagem do que recuperarmos para você.", Rows: 2, Hint: "Honorários de êxito é o principal diferencial para converter clientes com medo do custo."},
		{ID: "social_proof", Label: "Cases reais com valores recuperados", Placeholder: "Ex: Marcos, 52 anos — recuperou R$47k em verbas que a empresa escondeu. \"O Dr. Carlos me explicou tudo com paciência.\"", Rows: 2},
		{ID: "main_objection", Label: "Principal objeção do cliente", Placeholder: "Ex: \"A empresa é grande, não vou ganhar\" / \"Vai demorar anos\" / \"Não quero problemas\""},
		{ID: "cta", Label: "CTA — como dar o primeiro passo", Placeholder: "Ex: Falar no WhatsApp agora para análise gratuita do seu caso (resposta em até 2h)"},
		{ID: "urgency", Label: "Urgência real (prazo prescricional funciona muito bem)", Placeholder: "Ex: Você tem apenas 2 anos após a demissão para entrar com a ação. Não perca seus direitos por esperar."},
	},

	"Infoprodutos / Cursos": {
		{ID: "business_name", Label: "Nome do produto / curso / mentoria", Placeholder: "Ex: Método Copy Mestre, Mentoria Copywriter 6 em 7, Curso Gestão de Tráfego do Zero"},
		{ID: "avatar", Label: "Para quem é EXATAMENTE?", Placeholder: "Ex: Iniciantes em marketing digital de 20 a 35 anos que querem renda extra de R$3-5k/mês trabalhando de casa, mas não sabem por onde começar e já viram muita \"promessa sem resultado\"", Rows: 3},
		{ID: "transformation", Label: "Transformação específica em quanto tempo?", Placeholder: "Ex: Em 30 dias: primeiro cliente fechado e primeiro pagamento recebido. Em 90 dias: renda recorrente de R$3k+/mês trabalhando 4h/dia", Rows: 2},
		{ID: "unique_mechanism", Label: "Método único (o que diferencia de todos os outros cursos?)", Placeholder: "Ex: O único curso que ensina a fechar clientes ANTES de terminar as aulas, com script testado em +500 alunos que nunca venderam nada na vida", Rows: 2},
		{ID: "authority", Label: "Quem ensina? Resultados que você mesmo alcançou", Placeholder: "Ex: Lucas Ramos — demitido em 2020, comecei do zero, em 18 meses faturando R$40k/mês como copy. Já ensinei +3.000 alunos.", Rows: 2},
		{ID: "social_proof", Label: "Cases de alunos com situação parecida ao avatar", Placeholder: "Ex: \"Sem experiência, fechei meu primeiro cliente de R$1.200 na terceira semana\" — Ana, 28 anos, dona de casa\n\"Larguei o emprego CLT no mês 4\" — Pedro, 31 anos", Rows: 3},
		{ID: "main_objection", Label: "Principal objeção e como você a quebra", Placeholder: "Ex: \"Não tenho experiência\" → você não precisa — nosso método foi criado para quem está começando do absoluto zero"},
		{ID: "cta", Label: "CTA da landing page", Placeholder: "Ex: Garantir minha vaga na lista VIP e receber uma aula bônus gratuita antes do lançamento"},
		{ID: "urgency", Label: "Urgência real", Placeholder: "Ex: Lista VIP fecha sexta-feira / Apenas 500 vagas / Aula gratuita para os primeiros 200 inscritos"},
	},

	"Gestão de Tráfego / Marketing": {
		{ID: "business_name", Label: "Nome da agência / profissional", Placeholder: "Ex: Performance Digital — Bruno Silva | Agência Converte"},
		{ID: "specialty", Label: "Especialidade e plataformas que domina", Placeholder: "Ex: Tráfego pago no Meta Ads e Google Ads para clínicas e e-commerces de saúde e beleza"},
		{ID: "avatar", Label: "Cliente ideal (tipo de negócio, faturamento, problema)", Placeholder: "Ex: Donos de clínicas estéticas faturando R$30-100k/mês que já tentaram impulsionar posts sem resultado e precisam de clientes novos toda semana", Rows: 3},
		{ID: "transformation", Label: "Resultado concreto que você entrega em quanto tempo?", Placeholder: "Ex: Nos primeiros 30 dias: redução do custo por lead em 40% e primeiros clientes entrando. Em 90 dias: agenda lotada com ROI de 3:1", Rows: 2},
		{ID: "unique_mechanism", Label: "Seu processo / metodologia (o que te diferencia)", Placeholder: "Ex: Funil Inteligente de 3 Camadas — captura quente, retargeting com prova social e fechamento por WhatsApp automatizado. Diferente de agências que só \"impulsionam post\".", Rows: 3},
		{ID: "social_proof", Label: "Cases reais com números de ROI", Placeholder: "Ex: Clínica Bem Estar: investiu R$3k/mês e gerou R$28k em procedimentos no 1º mês. Loja Bella: ROAS 7,3 no Google Shopping.", Rows: 2},
		{ID: "main_objection", Label: "Principal objeção", Placeholder: "Ex: \"Já contratei agência e foi dinheiro jogado fora\" / \"Não tenho verba para investir\""},
		{ID: "cta", Label: "CTA (diagnóstico gratuito funciona muito bem)", Placeholder: "Ex: Solicitar diagnóstico gratuito de 30 min para analisar seus anúncios atuais e mostrar onde está perdendo dinheiro"},
		{ID: "urgency", Label: "Urgência real", Placeholder: "Ex: Apenas 3 novos clientes por mês (agenda limitada para manter qualidade) / Proposta válida por 48h"},
	},

	"Academia / Personal / Nutrição": {
		{ID: "business_name", Label: "Nome do profissional / academia", Placeholder: "Ex: Personal Trainer Rafael Gomes — Emagrecimento Masculino | Nutri Ana Clara | Studio Alpha"},
		{ID: "specialty", Label: "Foco e especialidade", Placeholder: "Ex: Emagrecimento para homens acima de 40 anos com metodologia anti-inflamatória + treino funcional de 3x/semana"},
		{ID: "avatar", Label: "Cliente ideal detalhado", Placeholder: "Ex: Homens de 35 a 55 anos, gerentes ou empreendedores, estressados, com barriga crescendo, que tentaram academia antes mas desistiram por falta de tempo ou resultado", Rows: 3},
		{ID: "transformation", Label: "Antes e depois específico (com tempo)", Placeholder: "ANTES: Barriga de 98cm, pressão 14x9, cansado, envergonhado na praia\nDEPOIS (90 dias): Barriga de 88cm, pressão controlada, camiseta M de volta, energia para brincar com os filhos", Rows: 3},
		{ID: "unique_mechanism", Label: "Metodologia / protocolo único", Placeholder: "Ex: Protocolo Homem 40+ — combina treino de força adaptado, protocolo nutricional anti-inflamatório e gestão do cortisol. Único método que trata as causas do ganho de peso masculino após os 40.", Rows: 2},
		{ID: "authority", Label: "Formação, CREF/CRN e resultados", Placeholder: "Ex: CREF 12345, pós-graduado em Fisiologia do Exercício, 9 anos de experiência, +400 alunos transformados, ex-obeso que perdeu 35kg usando o próprio método", Rows: 2},
		{ID: "social_proof", Label: "Depoimentos com transformação real", Placeholder: "Ex: \"Perdi 18kg em 4 meses e parei de tomar remédio para pressão\" — Roberto, 47 anos, sócio de empresa de TI", Rows: 2},
		{ID: "main_objection", Label: "Principal objeção", Placeholder: "Ex: \"Não tenho tempo\" / \"Já tentei de tudo e não funcionou\" / \"Tenho problema no joelho\""},
		{ID: "cta", Label: "CTA", Placeholder: "Ex: Avaliação física gratuita de 30 min (presencial ou online) para montar seu plano personalizado"},
		{ID: "urgency", Label: "Urgência real", Placeholder: "Ex: Turma online abre dia X — apenas 20 vagas / 3 horários presenciais vagos neste mês"},
	},
}

// ==========================
// Niche-specific questions, one page
// ==========================

var onePageNiche = map[string][]models.Question{

	"Clínica / Saúde": {
		{ID: "business_name", Label: "Nome completo da clínica / profissional", Placeholder: "Ex: Clínica Neuropsicológica Mente Viva — Dr. Paulo Neves"},
		{ID: "description", Label: "O que a clínica faz? (descrição completa)", Placeholder: "Ex: Clínica de neuropsicologia que atende crianças com TDAH, dislexia e autismo, e adultos com ansiedade, burnout e depressão, com abordagem integrativa e parecer neuropsicológico", Rows: 3},
		{ID: "history", Label: "História e missão da clínica", Placeholder: "Ex: Fundada em 2015 depois que o Dr. Paulo viu crianças com TDAH sendo medicadas sem diagnóstico preciso — missão de oferecer avaliação completa antes de qualquer tratamento", Rows: 2},
		{ID: "services", Label: "Serviços oferecidos (liste todos)", Placeholder: "Ex: Avaliação neuropsicológica completa / Parecer para escola / Psicoterapia individual / Orientação a pais / Laudos para INSS", Rows: 3},
		{ID: "differentials", Label: "Diferenciais reais", Placeholder: "Ex: Única clínica da região com avaliação neuropsicológica E psicoterapia no mesmo local / Laudos em até 15 dias / Atendimento online disponível", Rows: 2},
		{ID: "team", Label: "Equipe (nomes, formações, especialidades)", Placeholder: "Ex: Dr. Paulo Neves — neuropsicólogo CRP 01/12345, doutorado USP / Dra. Mariana Lima — psicóloga CRP, especialista em TCC infantil", Rows: 2},
		{ID: "social_proof", Label: "Números e depoimentos", Placeholder: "Ex: +1.500 avaliações realizadas, 96% de satisfação, \"finalmente entendemos por que nosso filho tinha dificuldade na escola\" — família Silva", Rows: 2},
		{ID: "contact_cta", Label: "Contato e CTA final", Placeholder: "Ex: WhatsApp (11) 99999-0000 / Rua X, nº Y, Bairro / Seg a Sex 8h-18h / Agende sua avaliação"},
	},

	"Advocacia / Jurídico": {
		{ID: "business_name", Label: "Nome do escritório", Placeholder: "Ex: Lima & Associados — Advocacia Trabalhista e Previdenciária"},
		{ID: "description", Label: "Descrição completa do escritório", Placeholder: "Ex: Escritório fundado em 2009 especializado em direito trabalhista e previdenciário, com foco em recuperar verbas de empregados prejudicados e benefícios negados pelo INSS", Rows: 3},
		{ID: "history", Label: "História / missão", Placeholder: "Ex: Criado por advogados que acreditam que o trabalhador brasileiro merece defesa de qualidade, independente do tamanho da empresa do outro lado", Rows: 2},
		{ID: "areas", Label: "Áreas de atuação (detalhe cada uma)", Placeholder: "Ex: 1. Trabalhista — demissão, assédio, horas extras | 2. Previdenciário — aposentadoria, benefício negado | 3. Acidente de trabalho | 4. FGTS", Rows: 3},
		{ID: "differentials", Label: "Diferenciais do escritório", Placeholder: "Ex: Honorários só no êxito / Atendimento online para todo Brasil / Equipe de 6 advogados especialistas / Resposta em até 24h", Rows: 2},
		{ID: "social_proof", Label: "Resultados e números", Placeholder: "Ex: +2.000 casos ganhos / R$12M recuperados para clientes / 89% de taxa de êxito em 15 anos", Rows: 2},
		{ID: "fees", Label: "Modelo de honorários", Placeholder: "Ex: Consulta inicial gratuita / Honorários somente em caso de êxito — sem custo antecipado"},
		{ID: "contact_cta", Label: "Contato", Placeholder: "Ex: WhatsApp (11) 99999-0000 / OAB/SP 123.456 / Rua X, SP / Também atendemos online"},
	},

	"Gestão de Tráfego / Marketing": {
		{ID: "business_name", Label: "Nome da agência / profissional", Placeholder: "Ex: Agência Converte — Performance em Meta e Google Ads"},
		{ID: "description", Label: "O que a agência faz e para quem", Placeholder: "Ex: Agência de performance digital especializada em tráfego pago para clínicas e e-commerces — geramos leads qualificados que se convertem em clientes reais", Rows: 3},
		{ID: "history", Label: "História / como surgiu", Placeholder: "Ex: Fundada por Bruno Silva em 2019 depois de 4 anos gerenciando R$2M+/mês em tráfego para grandes marcas — hoje focados exclusivamente em PMEs do setor de saúde", Rows: 2},
		{ID: "services", Label: "Serviços oferecidos", Placeholder: "Ex: Gestão de Meta Ads / Google Ads / Funil de vendas completo / Criação de landing pages / Relatórios semanais", Rows: 3},
		{ID: "differentials", Label: "Diferenciais reais", Placeholder: "Ex: Contrato mensal sem fidelidade / Relatório toda semana / Especialistas no nicho de saúde / Reunião de alinhamento quinzenal", Rows: 2},
		{ID: "social_proof", Label: "Cases com números reais", Placeholder: "Ex: Clínica X: 127 leads/mês a R$18 o lead / E-commerce Y: ROAS 6.2 / R$0 para R$80k em vendas em 3 meses", Rows: 2},
		{ID: "contact_cta", Label: "Contato e CTA", Placeholder: "Ex: WhatsApp para diagnóstico gratuito / contato@agencia.com / @agenciaconverte no Instagram"},
	},

	"Infoprodutos / Cursos": {
		{ID: "business_name", Label: "Nome da escola / plataforma / especialista", Placeholder: "Ex: Escola Copy Pro — Lucas Ramos | Instituto Gestão Digital"},
		{ID: "description", Label: "O que você ensina e para quem", Placeholder: "Ex: Escola online que ensina copywriting e vendas digitais para profissionais que querem trabalhar de casa com liberdade financeira", Rows: 3},
		{ID: "history", Label: "Sua história / como chegou aqui", Placeholder: "Ex: Fui demitido em 2020, aprendi copywriting por conta própria, em 18 meses estava faturando R$40k/mês. Criei a escola para encurtar esse caminho para outros.", Rows: 2},
		{ID: "services", Label: "Cursos e programas oferecidos", Placeholder: "Ex: Formação Copywriter Profissional (6 meses) / Curso de Lançamentos / Mentoria Individual / Comunidade mensal", Rows: 3},
		{ID: "differentials", Label: "Diferenciais reais", Placeholder: "Ex: Único curso onde você fecha cliente durante as aulas / Suporte no Discord 7 dias/semana / Atualização vitalícia do conteúdo", Rows: 2},
		{ID: "social_proof", Label: "Números e depoimentos de alunos", Placeholder: "Ex: +3.000 alunos formados / \"Saí do emprego em 4 meses\" — Ana, 28 anos / \"Primeiro cliente fechado na semana 3\" — Pedro", Rows: 2},
		{ID: "contact_cta", Label: "Como se inscrever / CTA", Placeholder: "Ex: Próxima turma abre em março — lista de espera disponível / WhatsApp para tirar dúvidas"},
	},

	"Academia / Personal / Nutrição": {
		{ID: "business_name", Label: "Nome do profissional / academia / studio", Placeholder: "Ex: Studio Alpha — Personal Training Especializado | Nutri Ana Clara | Academia Performance"},
		{ID: "description", Label: "O que você oferece e para quem", Placeholder: "Ex: Studio de personal training especializado em emagrecimento masculino para homens de 40+ com rotina intensa e histórico de tentativas frustradas com academia convencional", Rows: 3},
		{ID: "history", Label: "Sua história", Placeholder: "Ex: Fui personal trainer de academia por 5 anos, vi dezenas de homens desistindo porque o método convencional não funciona para eles. Criei o Protocolo 40+ especificamente para essa fase.", Rows: 2},
		{ID: "services", Label: "Serviços / programas oferecidos", Placeholder: "Ex: Personal presencial / Acompanhamento online / Programa intensivo 90 dias / Consultoria nutricional / Grupo de emagrecimento", Rows: 3},
		{ID: "differentials", Label: "Diferenciais reais", Placeholder: "Ex: Protocolo exclusivo para 40+ / Treinos de 45 min sem lesão / Plano alimentar sem restrições extremas / Suporte diário pelo app", Rows: 2},
		{ID: "social_proof", Label: "Resultados e depoimentos", Placeholder: "Ex: +400 alunos transformados / \"Perdi 22kg e parei o remédio de pressão\" — Eduardo, 52 anos / \"Mais energia do que aos 35\" — Marcos, 48 anos", Rows: 2},
		{ID: "contact_cta", Label: "Contato e CTA", Placeholder: "Ex: WhatsApp para avaliação gratuita / Endereço da academia / Horários de atendimento"},
	},
}

// ==========================
// Niche-specific questions, sales page
// ==========================

var salesPageNiche = map[string][]models.Question{

	"Infoprodutos / Cursos": {
		{ID: "product_name", Label: "Nome do produto / curso / mentoria", Placeholder: "Ex: Método Copy que Converte / Formação Gestor de Tráfego Premium / Mentoria Clínica 6 em 7"},
		{ID: "avatar", Label: "Avatar ULTRA específico (seja preciso)", Placeholder: "Ex: Copywriters freelancer com 1-3 anos de experiência faturando entre R$3k e R$6k/mês, que escrevem bem mas não sabem precificar, não têm processo e vivem na ansiedade de saber se o próximo mês vai pagar as contas", Rows: 3, Hint: "Quanto mais específico o avatar, mais o leitor certo vai pensar \"isso foi escrito pra mim\"."},
		{ID: "problem", Label: "A dor mais profunda (emocional, não técnica)", Placeholder: "Ex: A sensação de que trabalha mais que qualquer CLT, cobra barato com medo de perder o cliente, e quando olha para colegas que faturam 3x mais não entende o que está faltando", Rows: 3},
		{ID: "agitation", Label: "O que acontece se ele não agir? (futuro sombrio)", Placeholder: "Ex: Continua preso nos R$3-4k/mês, aceitando qualquer cliente, sem poder recusar trabalho ruim — daqui 2 anos estará exatamente igual, só mais cansado e frustrado", Rows: 2},
		{ID: "solution", Label: "A solução: seu método / produto (com nome)", Placeholder: "Ex: O Método Precificação Estratégica ensina os 4 pilares que copies de elite usam para cobrar R$5-15k por projeto: posicionamento de nicho, proposta irrecusável, processo de vendas consultivo e entrega que gera referência", Rows: 3},
		{ID: "authority", Label: "Sua história / autoridade (o que você JÁ fez)", Placeholder: "Ex: Sou Lucas Ramos — saí de R$800/mês para R$42k/mês como copywriter em 3 anos. Escrevi para 80+ empresas, gerei R$18M+ em vendas para clientes e formei mais de 1.400 copies no Brasil", Rows: 2},
		{ID: "social_proof", Label: "Cases de alunos com contexto similar ao avatar", Placeholder: "Ex: \"Cobrava R$500 por landing page. Depois do módulo 3, fechei um cliente de R$4.800 na mesma semana\" — Fernanda, 29 anos\n\"Larguei o emprego no mês 5 da mentoria\" — Thiago, 33 anos", Rows: 4},
		{ID: "objections", Label: "As 3 objeções mais comuns + como você quebra cada uma", Placeholder: "OBJ 1: \"Não tenho experiência suficiente\"\n→ O curso começa do zero e a maioria dos alunos fecha o primeiro cliente ainda durante as aulas\n\nOBJ 2: \"Já comprei curso e não funcionou\"\n→ Aqui você aprende implementando — cada módulo tem missão de aplicar e grupo de feedback\n\nOBJ 3: \"Está caro\"\n→ 1 cliente fechado com o método paga o investimento. E você vai fechar no mês 1.", Rows: 6},
		{ID: "offer", Label: "O que está incluso na oferta (liste TUDO, com bônus)", Placeholder: "PRINCIPAL:\n• 8 módulos em vídeo (atualização vitalícia)\n• Comunidade no Discord com mentoria coletiva semanal\n\nBÔNUS:\n• Templates de proposta e contrato (valor R$497)\n• Script de descoberta para call de vendas (valor R$297)", Rows: 5},
		{ID: "price_guarantee", Label: "Preço, condições e garantia", Placeholder: "Ex: R$1.997 à vista ou 12x R$197 / Garantia incondicional de 30 dias — devolução de 100% sem perguntas"},
		{ID: "urgency", Label: "Urgência / escassez (real e específica)", Placeholder: "Ex: Turma fecha domingo dia 25 às 23h59 / Os 50 primeiros ganham sessão de diagnóstico 1:1 de 45 min / Preço sobe R$500 na próxima turma"},
	},

	"Clínica / Saúde": {
		{ID: "product_name", Label: "Nome do programa / método / serviço", Placeholder: "Ex: Programa Mente Leve — 8 semanas para ansiedade / Método Anti-Dor Crônica / Protocolo Emagrecimento 90 dias"},
		{ID: "avatar", Label: "Paciente ideal ultra específico", Placeholder: "Ex: Mulheres de 30-45 anos com episódios de ansiedade e síndrome do pânico há mais de 1 ano, que já tentaram medicação mas odeiam os efeitos colaterais e vão perdendo espaço na própria vida", Rows: 3},
		{ID: "problem", Label: "A dor mais profunda do paciente", Placeholder: "Ex: Acorda já ansiosa, fica esperando o próximo ataque de pânico, evita situações que podem desencadear, vai perdendo viagens, festas, reuniões — e sente que está encolhendo enquanto os outros vivem normalmente", Rows: 3},
		{ID: "agitation", Label: "Consequências de não tratar (com empatia)", Placeholder: "Ex: Sem tratamento adequado, a ansiedade tende a se intensificar e limitar cada vez mais. Muitos chegam à agorafobia sem perceber o processo. E a medicação sem psicoterapia trata o sintoma, não a causa.", Rows: 2},
		{ID: "solution", Label: "Seu protocolo / programa único", Placeholder: "Ex: Programa Mente Leve de 8 semanas — combina TCC, técnicas de regulação do sistema nervoso e plano de exposição gradual. Diferente da consulta avulsa: é um processo estruturado com começo, meio e fim.", Rows: 3},
		{ID: "authority", Label: "Credenciais e experiência", Placeholder: "Ex: Dra. Ana Paula, CRP 01/23456, psicóloga especialista em TCC pela PUC, 10 anos com ansiedade, +600 pacientes atendidos", Rows: 2},
		{ID: "social_proof", Label: "Depoimentos com transformação real", Placeholder: "Ex: \"Depois de 4 semanas no programa, fui sozinha ao shopping pela primeira vez em 2 anos. Chorei de emoção.\" — Carla, 39 anos, professora", Rows: 2},
		{ID: "objections", Label: "Objeções e respostas", Placeholder: "OBJ 1: \"Já fiz terapia antes e não funcionou\"\n→ O programa tem estrutura e protocolo definido — não é terapia de suporte genérica\n\nOBJ 2: \"Vou ter tempo para os exercícios?\"\n→ São 20-30 min/dia de prática guiada", Rows: 4},
		{ID: "offer", Label: "O que está incluso no programa", Placeholder: "Ex: 8 sessões semanais de 1h (online ou presencial) / Material de apoio e exercícios diários / Suporte por WhatsApp entre sessões / Acesso a grupo exclusivo", Rows: 3},
		{ID: "price_guarantee", Label: "Investimento e garantia", Placeholder: "Ex: R$2.400 à vista ou 6x R$420 / Garantia: se após as 2 primeiras semanas você não sentir diferença, devolvemos o valor integral"},
		{ID: "urgency", Label: "Urgência ou disponibilidade", Placeholder: "Ex: Próxima turma começa dia 1º de março — apenas 12 vagas / Agenda presencial: 2 horários disponíveis neste mês"},
	},

	"Academia / Personal / Nutrição": {
		{ID: "product_name", Label: "Nome do programa / método", Placeholder: "Ex: Protocolo Homem 40+ / Programa Emagrecimento com Saúde 90 Dias / Consultoria Nutricional Online"},
		{ID: "avatar", Label: "Cliente ideal específico", Placeholder: "Ex: Homens de 40-55 anos, empresários ou executivos, com rotina estressante e 15-30kg a perder, que já tentaram emagrecer mas falham na consistência por falta de tempo", Rows: 3},
		{ID: "problem", Label: "Dor profunda (física + emocional)", Placeholder: "Ex: Cansa ao subir escada, barriga crescendo mesmo sem comer muito, médico falou em risco metabólico, vergonha de tirar a camisa, sente que perdeu o controle do próprio corpo", Rows: 3},
		{ID: "agitation", Label: "O que acontece se não agir", Placeholder: "Ex: Sem intervenção, o quadro metabólico tende a piorar. Pré-diabetes vira diabetes. Hipertensão aumenta. E cada ano mais difícil perder o que acumulou.", Rows: 2},
		{ID: "solution", Label: "Seu protocolo único", Placeholder: "Ex: Protocolo Homem 40+ — 3 treinos de 45 min/semana adaptados para metabolismo masculino pós-40, plano alimentar anti-inflamatório e suporte via app com check-in diário", Rows: 3},
		{ID: "authority", Label: "Sua autoridade + resultado próprio", Placeholder: "Ex: CREF 12345, esp. em fisiologia do exercício, 11 anos de experiência, ex-obeso que perdeu 28kg aos 38 anos usando o próprio método. +500 homens transformados.", Rows: 2},
		{ID: "social_proof", Label: "Cases com antes/depois e contexto", Placeholder: "Ex: \"Perdi 22kg em 5 meses e parei o remédio de pressão\" — Eduardo, 52 anos, dono de construtora. \"Tenho mais energia hoje do que aos 35\" — Marcos, 48 anos, diretor comercial.", Rows: 3},
		{ID: "objections", Label: "Objeções + respostas", Placeholder: "OBJ 1: \"Não tenho tempo\"\n→ 3 treinos de 45 min — menos tempo do que qualquer academia convencional\n\nOBJ 2: \"Tenho problema no joelho\"\n→ O protocolo é adaptado — trabalhamos com suas limitações, não contra elas", Rows: 5},
		{ID: "offer", Label: "O que está incluso", Placeholder: "Ex: 3 treinos semanais personalizados / Plano alimentar + receitas práticas / Check-in diário no app / Consulta de revisão mensal / Suporte via WhatsApp", Rows: 3},
		{ID: "price_guarantee", Label: "Investimento e garantia", Placeholder: "Ex: R$497/mês (contrato de 3 meses) ou R$1.297 à vista / Garantia de resultado: se não perder ao menos 5kg no primeiro mês seguindo o protocolo, devolvemos o valor"},
		{ID: "urgency", Label: "Urgência real", Placeholder: "Ex: Apenas 8 vagas disponíveis para acompanhamento individual em março / Inscrições encerram sexta-feira"},
	},

	"Gestão de Tráfego / Marketing": {
		{ID: "product_name", Label: "Nome do serviço / programa / consultoria", Placeholder: "Ex: Gestão de Tráfego Premium / Programa Agência Escalável / Mentoria Performance Digital"},
		{ID: "avatar", Label: "Cliente ideal ultra específico", Placeholder: "Ex: Gestores de tráfego solo com 1-3 anos de experiência, faturando R$4-10k/mês, que querem ter sua própria agência mas não sabem como precificar, contratar ou sistematizar para escalar sem trabalhar mais", Rows: 3},
		{ID: "problem", Label: "Dor mais profunda", Placeholder: "Ex: Sente que trabalha feito louco para clientes que não valorizam, cobra barato com medo de perder, cada mês começa do zero sem previsibilidade, e vê outros gestores cobrando 3x mais com menos esforço", Rows: 3},
		{ID: "agitation", Label: "O que acontece se não mudar", Placeholder: "Ex: Continua trocando hora por dinheiro, dependendo de indicação, sem sistema, sem escala. Daqui a 2 anos ainda vai estar no mesmo lugar, só mais cansado — enquanto o mercado evolui sem ele.", Rows: 2},
		{ID: "solution", Label: "Sua solução / método", Placeholder: "Ex: Método Agência Assimétrica — você aprende a montar uma operação de R$15-30k/mês com 2-3 colaboradores, contratos de 6 meses e relatórios que vendem sozinhos", Rows: 3},
		{ID: "authority", Label: "Sua autoridade comprovada", Placeholder: "Ex: Construí minha agência de R$0 a R$120k/mês em 3 anos, gerenciei R$8M+ em tráfego, hoje trabalho 4h/dia com equipe de 5 pessoas e 12 clientes fixos", Rows: 2},
		{ID: "social_proof", Label: "Cases de clientes / alunos", Placeholder: "Ex: \"Saí de gestor solo para agência de R$25k/mês em 6 meses\" — Rodrigo, 29 anos / \"Fechei meu primeiro contrato de R$4.500 na primeira semana\" — Juliana, 26 anos", Rows: 3},
		{ID: "objections", Label: "Objeções + respostas", Placeholder: "OBJ 1: \"Não tenho clientes para montar agência\"\n→ O módulo 2 ensina a prospectar 3 clientes em 30 dias usando apenas DM e indicação estruturada\n\nOBJ 2: \"Não sei gerenciar equipe\"\n→ Você só vai contratar quando já tiver o processo documentado — ensinamos isso antes", Rows: 5},
		{ID: "offer", Label: "O que está incluso", Placeholder: "Ex: 8 semanas de formação / Mentoria ao vivo semanal / Comunidade exclusiva / Templates de proposta, contrato e relatório / Bônus: auditoria de anúncios 1:1", Rows: 3},
		{ID: "price_guarantee", Label: "Preço e garantia", Placeholder: "Ex: R$2.997 à vista ou 12x R$297 / Garantia de 30 dias sem perguntas"},
		{ID: "urgency", Label: "Urgência real", Placeholder: "Ex: Turma de março: 40 vagas / Inscrições encerram no dia 10 / Bônus de R$1.200 para os 15 primeiros inscritos"},
	},
}

var nicheQuestions = map[models.PageType]map[string][]models.Question{
	models.PageTypeLandingPage: landingPageNiche,
	models.PageTypeOnePage:     onePageNiche,
	models.PageTypeSalesPage:   salesPageNiche,
}

var baseQuestions = map[models.PageType][]models.Question{
	models.PageTypeLandingPage: baseLandingPage,
	models.PageTypeOnePage:     baseOnePage,
	models.PageTypeSalesPage:   baseSalesPage,
}

// Questions resolves the question list for a page type and niche. A niche
// without a specific list falls back to the page type's base list as a
// whole; there is no partial merge.
func Questions(pageType models.PageType, niche string) []models.Question {
	if byNiche, ok := nicheQuestions[pageType]; ok {
		if qs, ok := byNiche[niche]; ok {
			return qs
		}
	}
	return baseQuestions[pageType]
}
