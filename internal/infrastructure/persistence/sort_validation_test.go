package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"desc returns DESC", "desc", "DESC"},
		{"invalid value returns DESC", "sideways", "DESC"},
		{"sql injection attempt returns DESC", "ASC; DROP TABLE documents;--", "DESC"},
		{"whitespace around ASC returns ASC", "  asc  ", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns default", "", "date"},
		{"whitelisted field passes", "number", "number"},
		{"whitelisted field status passes", "status", "status"},
		{"unknown field returns default", "shoe_size", "date"},
		{"sql injection attempt returns default", "number; DROP TABLE documents;--", "date"},
		{"subquery returns default", "(SELECT number FROM documents)", "date"},
		{"case sensitive, uppercase rejected", "NUMBER", "date"},
		{"field with trailing quote rejected", "number'--", "date"},
		{"whitespace around valid field passes", "  number  ", "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, DocumentSortFields, "date"))
		})
	}
}
