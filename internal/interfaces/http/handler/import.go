package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/invoicing/backend/internal/application/importer"
)

// openImportUpload extracts the CSV stream and conflict mode from an import
// request. The CSV arrives either as a multipart "file" field or as the raw
// request body; conflict_mode comes from the query string and defaults to
// skip. Reports its own errors and returns ok=false when the caller should
// bail out.
func openImportUpload(h BaseHandler, c *gin.Context) (io.ReadCloser, importer.ConflictMode, bool) {
	mode := importer.ConflictMode(c.DefaultQuery("conflict_mode", string(importer.ConflictSkip)))
	if !mode.IsValid() {
		h.BadRequest(c, "conflict_mode must be one of: skip, update, fail")
		return nil, "", false
	}

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			h.BadRequest(c, "Cannot read uploaded file")
			return nil, "", false
		}
		return f, mode, true
	}

	if c.Request.Body == nil {
		h.BadRequest(c, "CSV payload required")
		return nil, "", false
	}
	return c.Request.Body, mode, true
}
