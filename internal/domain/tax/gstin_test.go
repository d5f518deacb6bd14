package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("valid GSTIN decodes state and PAN", func(t *testing.T) {
		result := Validate("27AAPFU0939F1ZV")

		assert.True(t, result.Valid)
		assert.Equal(t, "27", result.StateCode)
		assert.Equal(t, "Maharashtra", result.StateName)
		assert.Equal(t, "AAPFU0939F", result.PAN)
	})

	t.Run("input is trimmed and upcased", func(t *testing.T) {
		result := Validate("  27aapfu0939f1zv ")

		assert.True(t, result.Valid)
		assert.Equal(t, "27AAPFU0939F1ZV", result.GSTIN)
	})

	t.Run("rejects bad structure", func(t *testing.T) {
		for _, gstin := range []string{
			"",
			"27AAPFU0939F1Z",    // too short
			"27AAPFU0939F1ZVX",  // too long
			"27AAPFU0939F10V",   // missing mandatory Z
			"2XAAPFU0939F1ZV",   // letter in state code
			"27aapfu0939f1z!",   // invalid character
		} {
			result := Validate(gstin)
			assert.False(t, result.Valid, "expected %q to be rejected", gstin)
		}
	})

	t.Run("rejects wrong checksum", func(t *testing.T) {
		result := Validate("27AAPFU0939F1ZW")

		assert.False(t, result.Valid)
		assert.Equal(t, "Invalid GSTIN checksum", result.Message)
	})

	t.Run("unknown state code still validates", func(t *testing.T) {
		result := Validate("24AAACC1206D1ZM")
		assert.True(t, result.Valid)
		assert.Equal(t, "Gujarat", result.StateName)
	})
}
