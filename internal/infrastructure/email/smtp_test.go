package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/flyoffice/directory/internal/application/contact/dto"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	s.messages = append(s.messages, m...)
	return s.err
}

func newTestNotifier(s sender) *InquiryNotifier {
	n := NewInquiryNotifier(SMTPConfig{
		Host:        "smtp.example.com",
		Port:        587,
		FromAddress: "noreply@example.com",
		FromName:    "Directory",
		StaffInbox:  "staff@example.com",
	})
	n.sender = s
	return n
}

func TestInquiryNotifier_NotifyNewInquiry(t *testing.T) {
	s := &captureSender{}
	n := newTestNotifier(s)

	err := n.NotifyNewInquiry(context.Background(), &dto.ContactDTO{
		ID:          "ct_1",
		Name:        "Ana",
		Email:       "ana@example.com",
		Subject:     "Lost bag",
		Message:     "My bag <b>never</b> arrived",
		InquiryType: "baggage",
		Priority:    "medium",
	})
	require.NoError(t, err)
	require.Len(t, s.messages, 1)

	m := s.messages[0]
	assert.Equal(t, []string{"staff@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"ana@example.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"New baggage inquiry from Ana: Lost bag"}, m.GetHeader("Subject"))
}

func TestInquiryHTML_EscapesText(t *testing.T) {
	body := inquiryHTML(&dto.ContactDTO{ID: "ct_1", Name: "<i>Ana</i>", Email: "a@b.co", Message: "line one\n<b>two</b>"})

	assert.Contains(t, body, "&lt;i&gt;Ana&lt;/i&gt;")
	assert.Contains(t, body, "line one<br>&lt;b&gt;two&lt;/b&gt;")
	assert.NotContains(t, body, "<b>")
}

func TestInquiryNotifier_SendFailure(t *testing.T) {
	n := newTestNotifier(&captureSender{err: errors.New("connection refused")})

	err := n.NotifyNewInquiry(context.Background(), &dto.ContactDTO{ID: "ct_1", Name: "A", Email: "a@b.co", Message: "hello"})
	assert.ErrorContains(t, err, "failed to send email")
}

func TestInquiryNotifier_CanceledContext(t *testing.T) {
	s := &captureSender{}
	n := newTestNotifier(s)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.NotifyNewInquiry(ctx, &dto.ContactDTO{ID: "ct_1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.messages)
}
