package handler

import (
	"github.com/gin-gonic/gin"
	settingsapp "github.com/invoicing/backend/internal/application/settings"
)

// BusinessHandler handles the business profile API endpoints
type BusinessHandler struct {
	BaseHandler
	profileService *settingsapp.ProfileService
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(profileService *settingsapp.ProfileService) *BusinessHandler {
	return &BusinessHandler{profileService: profileService}
}

// Get handles GET /business. Returns null data until a profile is saved.
func (h *BusinessHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// Save handles PUT /business
func (h *BusinessHandler) Save(c *gin.Context) {
	var req settingsapp.BusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	profile, err := h.profileService.Save(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// TestSMTP handles POST /business/smtp/test
func (h *BusinessHandler) TestSMTP(c *gin.Context) {
	if err := h.profileService.TestSMTP(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"reachable": true})
}
