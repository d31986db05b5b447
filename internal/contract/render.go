// Package contract creates and renders service agreements for pro
// subscribers. Rendering is a pure function of the stored contract and
// the designer's business profile.
package contract

import (
	"fmt"
	"strings"

	"bcstudio-server/internal/models"
)

const blankSignature = "________________________________"

var excludedServiceLabels = map[string]string{
	"fotografia":    "Fotografia",
	"banco_imagens": "Banco de imagens",
	"conteudo":      "Produção de conteúdo / textos",
	"hospedagem":    "Hospedagem",
	"dominio":       "Domínio",
	"logo":          "Criação de logotipo",
	"seo":           "Otimização SEO avançada",
}

// PaymentDescription builds the payment clause fragment. The second return
// reports whether the payment type was unrecognized and the entry+balance
// wording was used as fallback.
func PaymentDescription(c *models.Contract) (string, bool) {
	switch c.PaymentType {
	case models.PaymentPixAVista:
		return "a ser pago via PIX, à vista, no ato da contratação.", false
	case models.PaymentCartaoAVista:
		return "a ser pago via cartão de crédito, à vista, no ato da contratação.", false
	case models.PaymentParceladoSemJuros:
		parcel := c.Value
		if c.Installments > 1 {
			parcel = c.Value / float64(c.Installments)
		}
		return fmt.Sprintf("a ser pago em %dx de %s via cartão de crédito, sem juros.",
			c.Installments, formatBRL(parcel)), false
	case models.PaymentParceladoComJuros:
		return fmt.Sprintf("a ser parcelado em %dx via cartão de crédito, com juros a cargo do CONTRATANTE.",
			c.Installments), false
	case models.PaymentPixEntrada:
		return entryDescription(c), false
	default:
		return entryDescription(c), true
	}
}

func entryDescription(c *models.Contract) string {
	entry := c.EntryValue
	if entry <= 0 {
		entry = c.Value / 2
	}
	rest := c.Value - c.EntryValue

	desc := fmt.Sprintf("sendo %s pagos via PIX como entrada no ato da assinatura deste contrato", formatBRL(entry))
	if c.EntryValue > 0 && rest > 0 {
		desc += fmt.Sprintf(" e %s via PIX na entrega do projeto final", formatBRL(rest))
	}
	return desc + "."
}

// Render produces the full contract document as plain text. The second
// return reports whether the payment clause fell back to the entry+balance
// wording because the payment type was unrecognized.
func Render(c *models.Contract, wd *models.WdProfile) (string, bool) {
	startFmt := formatLongDate(c.StartDate)
	deliveryFmt := formatLongDate(c.StartDate.AddDate(0, 0, c.DeliveryDays))
	issuedFmt := formatLongDate(c.CreatedAt)
	paymentDesc, fallback := PaymentDescription(c)

	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	clause := func(num, title string) {
		line("")
		line("%s — %s", num, title)
	}

	line("CONTRATO DE PRESTAÇÃO DE SERVIÇOS")
	line("%s · Emitido em %s", c.ServiceType, issuedFmt)

	clause("1º", "DAS PARTES")
	line("CONTRATADO(A): %s", partyLine(wd.Name, wd.CPFCNPJ, wd.Address, wd.City, wd.State, wd.Phone, wd.Email))
	line("CONTRATANTE: %s", partyLine(c.ClientName, c.ClientCPFCNPJ, c.ClientAddress, c.ClientCity, c.ClientState, "", ""))

	clause("2º", "DA PRESTAÇÃO DE SERVIÇOS")
	line("O(A) CONTRATADO(A) se compromete a prestar os serviços de %s conforme as especificações abaixo:", c.ServiceType)
	line("%s", c.ServiceDescription)

	clause("3º", "DAS CONDIÇÕES")
	line("a) O CONTRATANTE é responsável por fornecer todos os materiais necessários para a execução do projeto (textos, imagens, logotipo, etc.) em até %d dias após a assinatura deste contrato.", c.MaterialsDays)
	line("b) O não fornecimento dos materiais dentro do prazo estipulado poderá acarretar no adiamento da entrega do projeto, sem qualquer penalidade ao CONTRATADO(A).")
	line("c) O CONTRATANTE terá direito a até 2 (duas) rodadas de revisão do projeto, desde que as alterações solicitadas estejam dentro do escopo contratado.")
	line("d) Qualquer alteração fora do escopo original deverá ser acordada entre as partes e poderá implicar em custos adicionais.")
	if len(c.ExcludedServices) > 0 {
		labels := make([]string, len(c.ExcludedServices))
		for i, id := range c.ExcludedServices {
			if label, ok := excludedServiceLabels[id]; ok {
				labels[i] = label
			} else {
				labels[i] = id
			}
		}
		line("e) Não estão incluídos no escopo deste contrato: %s. Tais itens, caso necessários, deverão ser contratados separadamente.", strings.Join(labels, ", "))
	}

	clause("4º", "DOS PRAZOS")
	line("a) O projeto terá início em %s e a entrega está prevista para %s (%d dias corridos), contados após o recebimento de todos os materiais pelo CONTRATANTE.", startFmt, deliveryFmt, c.DeliveryDays)
	line("b) Após a entrega do projeto, o CONTRATADO(A) disponibilizará suporte técnico e manutenção por um período de %d dias, para correção de eventuais bugs ou ajustes necessários.", c.MaintenanceDays)
	line("c) O prazo de entrega poderá ser prorrogado em casos de atraso no fornecimento de materiais pelo CONTRATANTE, eventos de força maior ou alterações de escopo solicitadas.")

	clause("5º", "DOS VALORES E FORMA DE PAGAMENTO")
	payment := fmt.Sprintf("O valor total pelos serviços prestados é de %s, %s", formatBRL(c.Value), paymentDesc)
	if c.PaymentTerms != "" {
		payment += fmt.Sprintf(" Observação: %s.", c.PaymentTerms)
	}
	line("%s", payment)
	line("a) O não pagamento nas datas acordadas poderá acarretar na suspensão dos serviços e/ou cancelamento do projeto, sem devolução dos valores já pagos.")
	line("b) Os arquivos finais e o acesso ao projeto serão entregues somente após a quitação integral do valor contratado.")

	clause("6º", "DA PROTEÇÃO DE DADOS (LGPD)")
	line("As informações compartilhadas pelas partes durante a execução deste contrato serão utilizadas exclusivamente para fins de prestação dos serviços aqui acordados, em conformidade com a Lei Geral de Proteção de Dados (Lei nº 13.709/2018). Ambas as partes comprometem-se a não divulgar, compartilhar ou utilizar os dados da outra parte para quaisquer outras finalidades.")

	clause("7º", "DOS DIREITOS AUTORAIS E PROPRIEDADE INTELECTUAL")
	line("a) Após a quitação integral do valor contratado, todos os direitos patrimoniais sobre os materiais desenvolvidos serão transferidos ao CONTRATANTE.")
	line("b) Até o pagamento completo, todos os direitos sobre o trabalho realizado permanecem com o(a) CONTRATADO(A).")
	line("c) O(A) CONTRATADO(A) reserva-se o direito de utilizar o projeto em seu portfólio profissional, salvo solicitação em contrário pelo CONTRATANTE por escrito.")

	clause("8º", "DA CONFIDENCIALIDADE")
	line("Ambas as partes comprometem-se a manter em sigilo todas as informações confidenciais trocadas durante a vigência deste contrato, incluindo dados estratégicos, técnicos e comerciais, não podendo divulgá-las a terceiros sem o consentimento expresso da outra parte.")

	clause("9º", "DA RESCISÃO")
	line("a) Qualquer das partes poderá rescindir este contrato mediante comunicação por escrito com antecedência mínima de 15 (quinze) dias.")
	line("b) Em caso de rescisão por iniciativa do CONTRATANTE, serão devidos os valores proporcionais aos serviços já executados, sem devolução do sinal pago.")
	line("c) Em caso de descumprimento de qualquer cláusula deste contrato por parte do CONTRATANTE, o(a) CONTRATADO(A) poderá rescindir imediatamente, retendo os valores já recebidos.")

	clause("10º", "DAS DISPOSIÇÕES GERAIS")
	city := wd.City
	if city == "" {
		city = "_______________"
	}
	state := wd.State
	if state == "" {
		state = "__"
	}
	line("a) As partes elegem o foro da comarca de %s/%s para dirimir quaisquer controvérsias oriundas do presente instrumento.", city, state)
	line("b) Este contrato é celebrado em caráter irrevogável e irretratável, obrigando as partes e seus sucessores.")
	line("c) Qualquer alteração neste contrato só terá validade se feita por escrito e assinada por ambas as partes.")

	locationCity := wd.City
	if locationCity == "" {
		locationCity = "_____________"
	}
	line("")
	line("%s, %s", locationCity, issuedFmt)

	line("")
	line("%s", signatureName(c.ClientName))
	line("CONTRATANTE")
	line("")
	line("%s", signatureName(wd.Name))
	line("CONTRATADO(A)")
	line("")
	line("%s", signatureName(c.Witness1))
	line("TESTEMUNHA 01")
	line("")
	line("%s", signatureName(c.Witness2))
	line("TESTEMUNHA 02")

	return b.String(), fallback
}

// partyLine builds the identification sentence for one party. Only filled
// fields appear; the sentence always ends with a period.
func partyLine(name, cpfCnpj, address, city, state, phone, email string) string {
	var b strings.Builder
	b.WriteString(name)
	if cpfCnpj != "" {
		fmt.Fprintf(&b, ", portador(a) do CPF/CNPJ nº %s", cpfCnpj)
	}
	if address != "" {
		fmt.Fprintf(&b, ", residente e domiciliado(a) em %s", address)
	}
	if city != "" {
		fmt.Fprintf(&b, ", %s/%s", city, state)
	}
	if phone != "" {
		fmt.Fprintf(&b, ", telefone: %s", phone)
	}
	if email != "" {
		fmt.Fprintf(&b, ", e-mail: %s", email)
	}
	b.WriteString(".")
	return b.String()
}

func signatureName(name string) string {
	if name == "" {
		return blankSignature
	}
	return name
}
