package importer

import (
	csvimport "github.com/invoicing/backend/internal/infrastructure/import"
)

// ConflictMode controls what happens when an imported row collides with
// an existing record
type ConflictMode string

const (
	// ConflictSkip leaves the existing record untouched and counts the row
	// as skipped
	ConflictSkip ConflictMode = "skip"
	// ConflictUpdate overwrites the existing record with the row's values
	ConflictUpdate ConflictMode = "update"
	// ConflictFail aborts the whole import on the first collision
	ConflictFail ConflictMode = "fail"
)

// IsValid reports whether the mode is one of the known values
func (m ConflictMode) IsValid() bool {
	switch m {
	case ConflictSkip, ConflictUpdate, ConflictFail:
		return true
	}
	return false
}

// Summary reports the outcome of a bulk import
type Summary struct {
	TotalRows int                  `json:"total_rows"`
	Imported  int                  `json:"imported"`
	Updated   int                  `json:"updated"`
	Skipped   int                  `json:"skipped"`
	Failed    int                  `json:"failed"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
}

func (s *Summary) addError(err csvimport.RowError) {
	s.Failed++
	if len(s.Errors) < 100 {
		s.Errors = append(s.Errors, err)
	}
}
