package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/invoicing/backend/internal/domain/tax"
)

// TaxHandler handles tax identifier API endpoints
type TaxHandler struct {
	BaseHandler
}

// NewTaxHandler creates a new TaxHandler
func NewTaxHandler() *TaxHandler {
	return &TaxHandler{}
}

// ValidateGSTIN handles GET /tax/gstin/:gstin. Always returns 200: an
// invalid GSTIN is a successful validation with valid=false, not an error.
func (h *TaxHandler) ValidateGSTIN(c *gin.Context) {
	result := tax.Validate(c.Param("gstin"))
	h.Success(c, result)
}
