package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/logger"
)

type stubEmail struct {
	calls    int
	lastTo   string
	lastBody string
	err      error
}

func (s *stubEmail) SendSimpleEmail(_ context.Context, _, to, _, body string) error {
	s.calls++
	s.lastTo = to
	s.lastBody = body
	return s.err
}

type stubTopics struct {
	calls   int
	lastARN string
	lastMsg string
	err     error
}

func (s *stubTopics) PublishToTopic(_ context.Context, topicARN, _, message string) error {
	s.calls++
	s.lastARN = topicARN
	s.lastMsg = message
	return s.err
}

type stubSMS struct {
	calls     int
	lastPhone string
	lastMsg   string
	err       error
}

func (s *stubSMS) PublishSMS(_ context.Context, phoneNumber, message string) error {
	s.calls++
	s.lastPhone = phoneNumber
	s.lastMsg = message
	return s.err
}

func enabledConfig() config.Config {
	var cfg config.Config
	cfg.Notifications.Email.Enabled = true
	cfg.Notifications.Email.FromEmail = "noreply@bcstudio.com"
	cfg.Notifications.SMS.Enabled = true
	cfg.Integrations.AWS.SNS.Enabled = true
	cfg.Integrations.AWS.SNS.AlertTopicARN = "arn:aws:sns:us-east-1:1:alerts"
	return cfg
}

func TestSendBriefingLink(t *testing.T) {
	email := &stubEmail{}
	n := New(email, nil, nil, enabledConfig(), logger.NewNoOpLogger())

	n.SendBriefingLink(context.Background(), "maria@example.com", "Maria", "https://app/briefing/tok-1")
	assert.Equal(t, 1, email.calls)
	assert.Equal(t, "maria@example.com", email.lastTo)
	assert.Contains(t, email.lastBody, "https://app/briefing/tok-1")
}

func TestSendBriefingLinkDisabled(t *testing.T) {
	email := &stubEmail{}
	cfg := enabledConfig()
	cfg.Notifications.Email.Enabled = false

	New(email, nil, nil, cfg, logger.NewNoOpLogger()).
		SendBriefingLink(context.Background(), "maria@example.com", "Maria", "link")
	assert.Zero(t, email.calls)
}

func TestNotifySubmissionFailureIsSwallowed(t *testing.T) {
	email := &stubEmail{err: fmt.Errorf("ses throttled")}
	n := New(email, nil, nil, enabledConfig(), logger.NewNoOpLogger())

	// must not panic or surface the error
	n.NotifySubmission(context.Background(), "dono@example.com", "", "Briefing LP")
	assert.Equal(t, 1, email.calls)
}

func TestNotifySubmissionSendsSMS(t *testing.T) {
	email := &stubEmail{}
	sms := &stubSMS{}
	n := New(email, nil, sms, enabledConfig(), logger.NewNoOpLogger())

	n.NotifySubmission(context.Background(), "dono@example.com", "+5511999999999", "Briefing LP")
	assert.Equal(t, 1, email.calls)
	assert.Equal(t, 1, sms.calls)
	assert.Equal(t, "+5511999999999", sms.lastPhone)
	assert.Contains(t, sms.lastMsg, "Briefing LP")
}

func TestNotifySubmissionSMSDisabledOrNoPhone(t *testing.T) {
	sms := &stubSMS{}

	cfg := enabledConfig()
	cfg.Notifications.SMS.Enabled = false
	New(nil, nil, sms, cfg, logger.NewNoOpLogger()).
		NotifySubmission(context.Background(), "", "+5511999999999", "Briefing LP")
	assert.Zero(t, sms.calls)

	New(nil, nil, sms, enabledConfig(), logger.NewNoOpLogger()).
		NotifySubmission(context.Background(), "", "", "Briefing LP")
	assert.Zero(t, sms.calls)
}

func TestAlertPaymentFallback(t *testing.T) {
	topics := &stubTopics{}
	n := New(nil, topics, nil, enabledConfig(), logger.NewNoOpLogger())

	n.AlertPaymentFallback(context.Background(), "c-1", "boleto")
	assert.Equal(t, 1, topics.calls)
	assert.Contains(t, topics.lastMsg, "c-1")
	assert.Contains(t, topics.lastMsg, "boleto")
}

func TestAlertPaymentFallbackWithoutTopic(t *testing.T) {
	topics := &stubTopics{}
	cfg := enabledConfig()
	cfg.Integrations.AWS.SNS.AlertTopicARN = ""

	New(nil, topics, nil, cfg, logger.NewNoOpLogger()).
		AlertPaymentFallback(context.Background(), "c-1", "boleto")
	assert.Zero(t, topics.calls)
}
