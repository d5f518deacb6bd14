package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Run("creates invoice with defaults", func(t *testing.T) {
		doc, err := NewDocument(TypeInvoice, "INV-0001", "", time.Time{})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, doc.ID)
		assert.Equal(t, TypeInvoice, doc.DocType)
		assert.Equal(t, "INV-0001", doc.Number)
		assert.Equal(t, StatusSent, doc.Status)
		assert.False(t, doc.Date.IsZero())
	})

	t.Run("quotation defaults to draft", func(t *testing.T) {
		doc, err := NewDocument(TypeQuotation, "QT-0001", "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, StatusDraft, doc.Status)
	})

	t.Run("explicit status wins over default", func(t *testing.T) {
		doc, err := NewDocument(TypeInvoice, "INV-0002", StatusPaid, time.Now())

		require.NoError(t, err)
		assert.Equal(t, StatusPaid, doc.Status)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewDocument(DocumentType("Receipt"), "R-0001", "", time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := NewDocument(TypeInvoice, "", "", time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := NewDocument(TypeInvoice, "INV-0003", DocumentStatus("Lost"), time.Now())
		assert.Error(t, err)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("requires description", func(t *testing.T) {
		_, err := NewLineItem("", nil, "", dec("1"), dec("10"), dec("0"), dec("0"))
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewLineItem("Widget", nil, "", dec("-1"), dec("10"), dec("0"), dec("0"))
		assert.Error(t, err)
	})

	t.Run("zero quantity allowed", func(t *testing.T) {
		item, err := NewLineItem("Widget", nil, "", dec("0"), dec("10"), dec("0"), dec("0"))
		require.NoError(t, err)
		assert.True(t, item.Quantity.IsZero())
	})
}

func TestDocumentReplaceItems(t *testing.T) {
	doc, err := NewDocument(TypeInvoice, "INV-0001", "", time.Now())
	require.NoError(t, err)

	first, err := NewLineItem("First", nil, "", dec("1"), dec("10"), dec("0"), dec("0"))
	require.NoError(t, err)
	second, err := NewLineItem("Second", nil, "", dec("2"), dec("20"), dec("0"), dec("0"))
	require.NoError(t, err)

	doc.ReplaceItems([]LineItem{*first, *second})

	require.Len(t, doc.Items, 2)
	assert.Equal(t, doc.ID, doc.Items[0].DocumentID)
	assert.Equal(t, 0, doc.Items[0].Position)
	assert.Equal(t, 1, doc.Items[1].Position)

	// Replace again with a single different item
	third, err := NewLineItem("Third", nil, "", dec("3"), dec("30"), dec("0"), dec("0"))
	require.NoError(t, err)
	doc.ReplaceItems([]LineItem{*third})

	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Third", doc.Items[0].Description)
}

func TestStatusTransitions(t *testing.T) {
	t.Run("any valid status can move to any other", func(t *testing.T) {
		all := []DocumentStatus{
			StatusDraft, StatusSent, StatusPaid, StatusPartial, StatusOverdue,
			StatusCancelled, StatusAccepted, StatusExpired, StatusDeclined,
		}
		for _, from := range all {
			for _, to := range all {
				assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("transition to invalid status is rejected", func(t *testing.T) {
		assert.False(t, StatusDraft.CanTransitionTo(DocumentStatus("Bogus")))
	})

	t.Run("paid check is case insensitive", func(t *testing.T) {
		assert.True(t, DocumentStatus("paid").IsPaid())
		assert.True(t, StatusPaid.IsPaid())
		assert.False(t, StatusSent.IsPaid())
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-0001", FormatNumber("INV-", 1))
	assert.Equal(t, "QT-0042", FormatNumber("QT-", 42))
	assert.Equal(t, "CN-12345", FormatNumber("CN-", 12345))
}

func TestDefaultPrefix(t *testing.T) {
	assert.Equal(t, "INV-", DefaultPrefix(TypeInvoice))
	assert.Equal(t, "QT-", DefaultPrefix(TypeQuotation))
	assert.Equal(t, "CN-", DefaultPrefix(TypeCreditNote))
}
