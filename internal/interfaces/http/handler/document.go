package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/invoicing/backend/internal/application/billing"
	"github.com/invoicing/backend/internal/domain/billing"
)

// DocumentHandler handles document lifecycle API endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *billingapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *billingapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create handles POST /documents
func (h *DocumentHandler) Create(c *gin.Context) {
	var req billingapp.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, doc)
}

// List handles GET /documents
func (h *DocumentHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	docType := billing.DocumentType(c.Query("type"))
	status := billing.DocumentStatus(c.Query("status"))

	docs, total, err := h.documentService.List(c.Request.Context(), docType, status, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, docs, total, filter.Page, filter.PageSize)
}

// Get handles GET /documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Update handles PUT /documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req billingapp.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Delete handles DELETE /documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Convert handles POST /documents/:id/convert
func (h *DocumentHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	invoice, err := h.documentService.ConvertToInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invoice)
}

// NextNumberResponse carries the peeked document number
type NextNumberResponse struct {
	Type   billing.DocumentType `json:"type"`
	Number string               `json:"number"`
}

// NextNumber handles GET /documents/next-number. Peeking never consumes a
// number.
func (h *DocumentHandler) NextNumber(c *gin.Context) {
	docType := billing.DocumentType(c.Query("type"))

	number, err := h.documentService.PeekNextNumber(c.Request.Context(), docType)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, NextNumberResponse{Type: docType, Number: number})
}

// Email handles POST /documents/:id/email
func (h *DocumentHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req billingapp.EmailDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.documentService.Email(c.Request.Context(), id, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"sent": true})
}
