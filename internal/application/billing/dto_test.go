package billing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenientDecimalUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", `12.5`, "12.5"},
		{"numeric string", `"100"`, "100"},
		{"integer", `7`, "7"},
		{"null", `null`, "0"},
		{"empty string", `""`, "0"},
		{"garbage coerces to zero", `"abc"`, "0"},
		{"whitespace", `"  "`, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d LenientDecimal
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestLenientDecimalInLineItem(t *testing.T) {
	raw := `{"description":"Widget","quantity":"not a number","rate":"250"}`

	var item LineItemRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.True(t, item.Quantity.IsZero())
	assert.Equal(t, "250", item.Rate.String())
}
