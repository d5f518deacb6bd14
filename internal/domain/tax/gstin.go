// Package tax validates Indian GST identification numbers. Validation is
// purely structural plus checksum: it needs no network access and is safe
// to call from request handlers.
package tax

import (
	"regexp"
	"strings"
)

const checksumAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// Result holds the outcome of a GSTIN validation
type Result struct {
	Valid     bool   `json:"valid"`
	GSTIN     string `json:"gstin"`
	PAN       string `json:"pan,omitempty"`
	StateCode string `json:"state_code,omitempty"`
	StateName string `json:"state_name,omitempty"`
	Message   string `json:"message"`
}

// Validate checks a 15-character GSTIN: structural pattern first, then the
// mod-36 checksum over the leading 14 characters. The multiplier alternates
// 1 and 2 starting at the first character, and each product contributes its
// quotient and remainder by 36 to the running sum.
func Validate(gstin string) Result {
	clean := strings.ToUpper(strings.TrimSpace(gstin))

	if !gstinPattern.MatchString(clean) {
		return Result{Valid: false, GSTIN: clean, Message: "Invalid GSTIN format"}
	}

	sum := 0
	for i := 0; i < 14; i++ {
		val := strings.IndexByte(checksumAlphabet, clean[i])
		multiplier := 1
		if i%2 == 1 {
			multiplier = 2
		}
		product := val * multiplier
		sum += product/36 + product%36
	}
	checkIdx := (36 - sum%36) % 36
	if clean[14] != checksumAlphabet[checkIdx] {
		return Result{Valid: false, GSTIN: clean, Message: "Invalid GSTIN checksum"}
	}

	stateCode := clean[0:2]
	stateName, ok := stateNames[stateCode]
	if !ok {
		stateName = "Unknown State"
	}

	return Result{
		Valid:     true,
		GSTIN:     clean,
		PAN:       clean[2:12],
		StateCode: stateCode,
		StateName: stateName,
		Message:   "Format valid",
	}
}
