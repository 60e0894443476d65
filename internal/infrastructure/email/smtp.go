// Package email sends staff notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/flyoffice/directory/internal/application/contact/dto"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	StaffInbox  string
}

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// InquiryNotifier mails every new inquiry to the staff inbox.
type InquiryNotifier struct {
	config SMTPConfig
	sender sender
}

func NewInquiryNotifier(config SMTPConfig) *InquiryNotifier {
	return &InquiryNotifier{
		config: config,
		sender: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (n *InquiryNotifier) NotifyNewInquiry(ctx context.Context, inquiry *dto.ContactDTO) error {
	if inquiry == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("New %s inquiry from %s", inquiry.InquiryType, inquiry.Name)
	if inquiry.Subject != "" {
		subject += ": " + inquiry.Subject
	}

	return n.send(n.config.StaffInbox, inquiry.Email, subject, inquiryHTML(inquiry), inquiryPlain(inquiry))
}

func (n *InquiryNotifier) send(to, replyTo, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.config.FromAddress, n.config.FromName)
	m.SetHeader("To", to)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func inquiryPlain(c *dto.ContactDTO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Inquiry %s (%s, priority %s)\n\n", c.ID, c.InquiryType, c.Priority)
	fmt.Fprintf(&b, "From: %s <%s>\n", c.Name, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
	}
	if c.AirlineID != nil {
		fmt.Fprintf(&b, "Airline: %s\n", *c.AirlineID)
	}
	if c.OfficeID != nil {
		fmt.Fprintf(&b, "Office: %s\n", *c.OfficeID)
	}
	fmt.Fprintf(&b, "\n%s\n", c.Message)
	return b.String()
}

// Inquiry text is stripped of markup on intake but still escaped here.
func inquiryHTML(c *dto.ContactDTO) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h2>Inquiry %s</h2>", html.EscapeString(c.ID))
	fmt.Fprintf(&b, "<p>Type: %s, priority: %s</p>", html.EscapeString(c.InquiryType), html.EscapeString(c.Priority))
	fmt.Fprintf(&b, "<p>From: %s &lt;%s&gt;</p>", html.EscapeString(c.Name), html.EscapeString(c.Email))
	if c.Phone != "" {
		fmt.Fprintf(&b, "<p>Phone: %s</p>", html.EscapeString(c.Phone))
	}
	fmt.Fprintf(&b, "<blockquote>%s</blockquote>", strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>"))
	b.WriteString("</body></html>")
	return b.String()
}
