package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/service"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
	"github.com/noah-isme/uta-ingest-api/pkg/response"
)

// ImportHandler wires HTTP endpoints to the import service.
type ImportHandler struct {
	service  *service.ImportService
	template *service.TemplateService
}

// NewImportHandler creates a new handler.
func NewImportHandler(svc *service.ImportService, template *service.TemplateService) *ImportHandler {
	return &ImportHandler{service: svc, template: template}
}

// Import godoc
// @Summary Import a timetable document
// @Description Normalize one CSV document into deduplicated registries
// @Tags Import
// @Accept json
// @Produce json
// @Param payload body dto.ImportRequest true "Document payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /import/timetable [post]
func (h *ImportHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid import payload"))
		return
	}

	res, err := h.service.Import(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}

// Template godoc
// @Summary Download the sample document
// @Description Return a sample CSV demonstrating the complete-timetable header set
// @Tags Import
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Router /import/template [get]
func (h *ImportHandler) Template(c *gin.Context) {
	res, err := h.template.Generate()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(res.Content))
}
