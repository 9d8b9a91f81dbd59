package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uta-ingest-api/internal/dto"
	"github.com/noah-isme/uta-ingest-api/internal/service"
	appErrors "github.com/noah-isme/uta-ingest-api/pkg/errors"
	"github.com/noah-isme/uta-ingest-api/pkg/response"
)

// ResolverHandler wires HTTP endpoints to the resolver service.
type ResolverHandler struct {
	service *service.ResolverService
}

// NewResolverHandler creates a new handler.
func NewResolverHandler(svc *service.ResolverService) *ResolverHandler {
	return &ResolverHandler{service: svc}
}

// Resolve godoc
// @Summary Resolve class metadata
// @Description Infer owning department and semester for class section identifiers
// @Tags Resolver
// @Accept json
// @Produce json
// @Param payload body dto.ResolveRequest true "Resolve payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes/resolve [post]
func (h *ResolverHandler) Resolve(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resolve payload"))
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}
