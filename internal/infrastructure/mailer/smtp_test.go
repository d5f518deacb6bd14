package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/settings"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *settings.BusinessProfile {
	profile := settings.NewBusinessProfile("Acme Traders")
	profile.SMTPHost = "smtp.example.com"
	profile.SMTPFrom = "billing@example.com"
	return profile
}

func testDocument(t *testing.T) *billing.Document {
	t.Helper()
	doc, err := billing.NewDocument(billing.TypeInvoice, "INV-0001", "", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	item, err := billing.NewLineItem("Consulting", nil, "",
		decimal.NewFromInt(2), decimal.NewFromInt(500),
		decimal.NewFromInt(18), decimal.Zero)
	require.NoError(t, err)
	doc.Items = []billing.LineItem{*item}
	return doc
}

func TestSendDocument_RequiresConfiguration(t *testing.T) {
	m := NewSMTPMailer(nil)
	doc := testDocument(t)

	tests := []struct {
		name    string
		profile *settings.BusinessProfile
	}{
		{"nil profile", nil},
		{"missing host", &settings.BusinessProfile{SMTPFrom: "a@b.c"}},
		{"missing from", &settings.BusinessProfile{SMTPHost: "smtp.example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.SendDocument(context.Background(), tt.profile, "client@example.com", doc)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "SMTP_NOT_CONFIGURED", domainErr.Code)
		})
	}
}

func TestSendDocument_RequiresRecipient(t *testing.T) {
	m := NewSMTPMailer(nil)
	err := m.SendDocument(context.Background(), testProfile(), "", testDocument(t))
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_RECIPIENT", domainErr.Code)
}

func TestVerify_UnreachableHost(t *testing.T) {
	m := NewSMTPMailer(nil)
	m.dialTimeout = 200 * time.Millisecond

	profile := testProfile()
	profile.SMTPHost = "127.0.0.1"
	profile.SMTPPort = 1 // nothing listens here

	err := m.Verify(context.Background(), profile)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SMTP_UNREACHABLE", domainErr.Code)
}

func TestRenderBody(t *testing.T) {
	profile := testProfile()
	doc := testDocument(t)

	body := renderBody(profile, doc)

	assert.Contains(t, body, "Invoice INV-0001")
	assert.Contains(t, body, "Date: 01 Apr 2025")
	assert.Contains(t, body, "Consulting")
	// 2 x 500 = 1000 plus 18% tax
	assert.Contains(t, body, "Subtotal: INR 1,000.00")
	assert.Contains(t, body, "Tax: INR 180.00")
	assert.Contains(t, body, "Total: INR 1,180.00")
	assert.Contains(t, body, "Regards,\nAcme Traders")
}

func TestRenderBody_DocumentCurrencyWins(t *testing.T) {
	profile := testProfile()
	doc := testDocument(t)
	doc.Currency = "USD"

	body := renderBody(profile, doc)
	assert.Contains(t, body, "Total: USD 1,180.00")
	assert.NotContains(t, body, "INR")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@example.com", "to@example.com", "Invoice INV-0001", "line1\nline2"))

	assert.Contains(t, msg, "From: from@example.com\r\n")
	assert.Contains(t, msg, "To: to@example.com\r\n")
	assert.Contains(t, msg, "Subject: Invoice INV-0001\r\n")
	assert.Contains(t, msg, "\r\n\r\nline1\r\nline2")
}

func TestSMTPDefaults(t *testing.T) {
	profile := testProfile()
	assert.Equal(t, 587, smtpPort(profile))

	profile.SMTPPort = 2525
	assert.Equal(t, 2525, smtpPort(profile))

	assert.Nil(t, smtpAuth(profile))
	profile.SMTPUser = "user"
	assert.NotNil(t, smtpAuth(profile))
}
