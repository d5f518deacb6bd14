package settings

import (
	"testing"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/stretchr/testify/assert"
)

func TestPrefixFor(t *testing.T) {
	t.Run("nil profile falls back to defaults", func(t *testing.T) {
		var p *BusinessProfile

		assert.Equal(t, "INV-", p.PrefixFor(billing.TypeInvoice))
		assert.Equal(t, "QT-", p.PrefixFor(billing.TypeQuotation))
		assert.Equal(t, "CN-", p.PrefixFor(billing.TypeCreditNote))
	})

	t.Run("configured prefixes win", func(t *testing.T) {
		p := NewBusinessProfile("Acme Traders")
		p.InvoicePrefix = "ACME/"
		p.QuotationPrefix = "Q/"

		assert.Equal(t, "ACME/", p.PrefixFor(billing.TypeInvoice))
		assert.Equal(t, "Q/", p.PrefixFor(billing.TypeQuotation))
		assert.Equal(t, "CN-", p.PrefixFor(billing.TypeCreditNote), "unset prefix still falls back")
	})
}

func TestDeductsInventory(t *testing.T) {
	var missing *BusinessProfile
	assert.True(t, missing.DeductsInventory(), "missing profile deducts by default")

	p := NewBusinessProfile("Acme Traders")
	assert.True(t, p.DeductsInventory())

	p.AutoDeductInventory = false
	assert.False(t, p.DeductsInventory())
}
