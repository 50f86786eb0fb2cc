package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"camping-fun/server/internal/service"
	"camping-fun/server/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSignups downloads the signup roster.
// GET /export/signups
func (h *ExportHandler) ExportSignups(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSignups(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
