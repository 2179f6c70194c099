package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/internal/service"
	"github.com/noah-isme/sma-club-registry-api/pkg/response"
)

type contactReadRequest = models.Request[NoData, models.QueryableContact, models.ContactSortableField]

type contactService interface {
	Get(ctx context.Context, id int64, plan models.FetchPlan) (dto.Contact, error)
	Query(ctx context.Context, lq models.ListQuery[models.QueryableContact], plan models.FetchPlan) (*service.Page[dto.Contact], error)
}

// ContactHandler exposes contact endpoints.
type ContactHandler struct {
	contacts contactService
	cfg      ListConfig
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(contacts contactService, cfg ListConfig) *ContactHandler {
	return &ContactHandler{contacts: contacts, cfg: cfg.withDefaults()}
}

// List godoc
// @Summary List contacts
// @Tags Contacts
// @Produce json
// @Param filter[data][type] query string false "Contact type"
// @Param filter[q] query string false "Free-text search"
// @Param pagination[p] query int false "Page"
// @Param pagination[size] query int false "Page size"
// @Param fetch_level query string false "id_only | compact | default"
// @Success 200 {object} response.Envelope
// @Router /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	var req contactReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.contacts.Query(c.Request.Context(), models.ToListQuery(&req, h.cfg.DefaultPageSize, h.cfg.MaxPageSize), req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondPage(c, page)
}

// Get godoc
// @Summary Get contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req contactReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	contact, err := h.contacts.Get(c.Request.Context(), id, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contact, nil)
}
