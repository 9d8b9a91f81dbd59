package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/service"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
	"github.com/noah-isme/uta-ingest-api/pkg/response"
)

// ExportHandler wires HTTP endpoints to the export service.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Export a normalized collection
// @Description Render one normalized entity collection as a CSV file
// @Tags Export
// @Accept json
// @Produce text/csv
// @Param payload body dto.ExportRequest true "Export payload"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} response.Envelope
// @Router /export/normalized [post]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}

	res, err := h.service.Generate(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", res.Payload)
}
