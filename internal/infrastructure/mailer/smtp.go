package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/settings"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SMTPMailer sends documents over plain SMTP using the connection settings
// stored on the business profile. The profile is passed per call so settings
// changes take effect without a restart.
type SMTPMailer struct {
	logger      *zap.Logger
	dialTimeout time.Duration
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(logger *zap.Logger) *SMTPMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		logger:      logger,
		dialTimeout: 10 * time.Second,
	}
}

// SendDocument emails a plain-text rendering of the document to the
// recipient
func (m *SMTPMailer) SendDocument(ctx context.Context, profile *settings.BusinessProfile, to string, doc *billing.Document) error {
	if err := checkSettings(profile); err != nil {
		return err
	}
	if to == "" {
		return shared.NewDomainError("INVALID_RECIPIENT", "Recipient email cannot be empty")
	}

	subject := fmt.Sprintf("%s %s from %s", doc.DocType.String(), doc.Number, profile.Name)
	body := renderBody(profile, doc)
	msg := buildMessage(profile.SMTPFrom, to, subject, body)

	addr := net.JoinHostPort(profile.SMTPHost, strconv.Itoa(smtpPort(profile)))
	auth := smtpAuth(profile)

	m.logger.Info("Sending document email",
		zap.String("document_number", doc.Number),
		zap.String("to", to),
		zap.String("smtp_host", profile.SMTPHost),
	)

	if err := m.send(ctx, addr, auth, profile.SMTPFrom, []string{to}, msg); err != nil {
		m.logger.Error("Document email failed",
			zap.String("document_number", doc.Number),
			zap.Error(err),
		)
		return shared.NewDomainError("EMAIL_FAILED", fmt.Sprintf("Failed to send email: %v", err))
	}
	return nil
}

// Verify dials the configured SMTP server and performs a handshake without
// sending mail. Used by the settings test endpoint.
func (m *SMTPMailer) Verify(ctx context.Context, profile *settings.BusinessProfile) error {
	if err := checkSettings(profile); err != nil {
		return err
	}

	addr := net.JoinHostPort(profile.SMTPHost, strconv.Itoa(smtpPort(profile)))

	dialer := net.Dialer{Timeout: m.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return shared.NewDomainError("SMTP_UNREACHABLE", fmt.Sprintf("Cannot reach SMTP server: %v", err))
	}

	client, err := smtp.NewClient(conn, profile.SMTPHost)
	if err != nil {
		conn.Close()
		return shared.NewDomainError("SMTP_HANDSHAKE_FAILED", fmt.Sprintf("SMTP handshake failed: %v", err))
	}
	defer client.Close()

	if auth := smtpAuth(profile); auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return shared.NewDomainError("SMTP_AUTH_FAILED", fmt.Sprintf("SMTP authentication failed: %v", err))
			}
		}
	}
	return client.Quit()
}

// send runs smtp.SendMail in a goroutine so the context deadline is honored.
// net/smtp has no context support of its own.
func (m *SMTPMailer) send(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, from, to, msg)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func checkSettings(profile *settings.BusinessProfile) error {
	if profile == nil || profile.SMTPHost == "" || profile.SMTPFrom == "" {
		return shared.NewDomainError("SMTP_NOT_CONFIGURED", "SMTP host and sender address must be configured first")
	}
	return nil
}

func smtpPort(profile *settings.BusinessProfile) int {
	if profile.SMTPPort > 0 {
		return profile.SMTPPort
	}
	return 587
}

func smtpAuth(profile *settings.BusinessProfile) smtp.Auth {
	if profile.SMTPUser == "" {
		return nil
	}
	return smtp.PlainAuth("", profile.SMTPUser, profile.SMTPPassword, profile.SMTPHost)
}

// renderBody produces the plain-text email body with per-line amounts and
// grouped totals
func renderBody(profile *settings.BusinessProfile, doc *billing.Document) string {
	p := message.NewPrinter(language.English)
	totals := billing.CalculateTotals(doc.Items)

	currency := doc.Currency
	if currency == "" {
		currency = profile.Currency
	}

	var b strings.Builder
	p.Fprintf(&b, "%s %s\n", doc.DocType.String(), doc.Number)
	p.Fprintf(&b, "Date: %s\n", doc.Date.Format("02 Jan 2006"))
	if doc.DueDate != nil {
		p.Fprintf(&b, "Due: %s\n", doc.DueDate.Format("02 Jan 2006"))
	}
	b.WriteString("\n")

	for _, item := range doc.Items {
		line := billing.CalculateLine(item)
		amount, _ := line.LineTotal.Round(2).Float64()
		qty := item.Quantity.String()
		p.Fprintf(&b, "  %s x %s  %s %.2f\n", item.Description, qty, currency, amount)
	}

	subtotal, _ := totals.Subtotal.Round(2).Float64()
	tax, _ := totals.TaxTotal.Round(2).Float64()
	grand, _ := totals.GrandTotal.Round(2).Float64()

	b.WriteString("\n")
	p.Fprintf(&b, "Subtotal: %s %.2f\n", currency, subtotal)
	p.Fprintf(&b, "Tax: %s %.2f\n", currency, tax)
	p.Fprintf(&b, "Total: %s %.2f\n", currency, grand)

	if doc.Notes != "" {
		p.Fprintf(&b, "\n%s\n", doc.Notes)
	}
	if doc.Terms != "" {
		p.Fprintf(&b, "\nTerms: %s\n", doc.Terms)
	}
	p.Fprintf(&b, "\nRegards,\n%s\n", profile.Name)
	return b.String()
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
