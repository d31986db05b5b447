// Package notify sends best-effort notifications over SES and SNS. A
// failed notification is logged and dropped; it never blocks or fails the
// operation that triggered it.
package notify

import (
	"context"
	"fmt"

	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/models"
)

// EmailSender is the subset of the SES client the notifier uses.
type EmailSender interface {
	SendSimpleEmail(ctx context.Context, from, to, subject, body string) error
}

// TopicPublisher is the subset of the SNS client the notifier uses for
// ops alerts.
type TopicPublisher interface {
	PublishToTopic(ctx context.Context, topicARN, subject, message string) error
}

// SMSSender is the subset of the SNS client the notifier uses for direct
// SMS.
type SMSSender interface {
	PublishSMS(ctx context.Context, phoneNumber, message string) error
}

// Notifier fans out product notifications. Any client may be nil; the
// corresponding notifications become no-ops.
type Notifier struct {
	email  EmailSender
	topics TopicPublisher
	sms    SMSSender
	cfg    config.Config
	logger logger.Logger
}

// New creates a notifier.
func New(email EmailSender, topics TopicPublisher, sms SMSSender, cfg config.Config, log logger.Logger) *Notifier {
	return &Notifier{email: email, topics: topics, sms: sms, cfg: cfg, logger: log}
}

// SendBriefingLink emails the public briefing link to the end client.
func (n *Notifier) SendBriefingLink(ctx context.Context, toEmail, clientName, link string) {
	if n.email == nil || !n.cfg.Notifications.Email.Enabled || toEmail == "" {
		return
	}

	subject := "Briefing do seu projeto"
	body := fmt.Sprintf(`Olá, %s!

Seu briefing está pronto para ser preenchido. Acesse o link abaixo e responda as perguntas com calma:

%s

Quanto mais detalhes você informar, melhor será o resultado do seu projeto.`, clientName, link)

	if err := n.email.SendSimpleEmail(ctx, n.cfg.Notifications.Email.FromEmail, toEmail, subject, body); err != nil {
		n.logger.Warn("failed to send briefing link email", map[string]interface{}{
			"to":    toEmail,
			"error": err.Error(),
		})
	}
}

// NotifySubmission tells the designer a briefing was answered, by email
// and, when enabled and a phone is on file, by SMS.
func (n *Notifier) NotifySubmission(ctx context.Context, ownerEmail, ownerPhone, briefingTitle string) {
	title := briefingTitle
	if title == "" {
		title = "Seu briefing"
	}

	if n.email != nil && n.cfg.Notifications.Email.Enabled && ownerEmail != "" {
		subject := "Briefing respondido"
		body := fmt.Sprintf(`%s acabou de ser respondido.

Acesse o painel para revisar as respostas e gerar a copy do projeto.`, title)

		if err := n.email.SendSimpleEmail(ctx, n.cfg.Notifications.Email.FromEmail, ownerEmail, subject, body); err != nil {
			n.logger.Warn("failed to send submission email", map[string]interface{}{
				"to":    ownerEmail,
				"error": err.Error(),
			})
		}
	}

	if n.sms != nil && n.cfg.Notifications.SMS.Enabled && ownerPhone != "" {
		message := fmt.Sprintf("BC Studio: %s acabou de ser respondido. Acesse o painel para revisar.", title)
		if err := n.sms.PublishSMS(ctx, ownerPhone, message); err != nil {
			n.logger.Warn("failed to send submission sms", map[string]interface{}{
				"to":    ownerPhone,
				"error": err.Error(),
			})
		}
	}
}

// AlertPaymentFallback publishes an ops alert when a contract document is
// rendered with an unrecognized payment type.
func (n *Notifier) AlertPaymentFallback(ctx context.Context, contractID string, paymentType models.PaymentType) {
	topicARN := n.cfg.Integrations.AWS.SNS.AlertTopicARN
	if n.topics == nil || !n.cfg.Integrations.AWS.SNS.Enabled || topicARN == "" {
		return
	}

	message := fmt.Sprintf("contract %s rendered with unrecognized payment type %q, entry+balance clause used", contractID, paymentType)
	if err := n.topics.PublishToTopic(ctx, topicARN, "contract payment fallback", message); err != nil {
		n.logger.Warn("failed to publish payment fallback alert", map[string]interface{}{
			"contract_id": contractID,
			"error":       err.Error(),
		})
	}
}
