package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/internal/service"
	"github.com/noah-isme/sma-club-registry-api/pkg/response"
)

type (
	clubRequestReadRequest   = models.Request[NoData, models.QueryableClubRequest, models.ClubRequestSortableField]
	clubRequestReviewRequest = models.Request[models.UpdatableClubRequest, models.QueryableClubRequest, models.ClubRequestSortableField]
)

type clubRequestService interface {
	Get(ctx context.Context, id uuid.UUID, plan models.FetchPlan) (dto.ClubRequest, error)
	Query(ctx context.Context, lq models.ListQuery[models.QueryableClubRequest], plan models.FetchPlan) (*service.Page[dto.ClubRequest], error)
	Review(ctx context.Context, user *models.User, id uuid.UUID, u models.UpdatableClubRequest, plan models.FetchPlan) (dto.ClubRequest, error)
}

// ClubRequestHandler exposes join request endpoints.
type ClubRequestHandler struct {
	requests clubRequestService
	cfg      ListConfig
}

// NewClubRequestHandler constructs ClubRequestHandler.
func NewClubRequestHandler(requests clubRequestService, cfg ListConfig) *ClubRequestHandler {
	return &ClubRequestHandler{requests: requests, cfg: cfg.withDefaults()}
}

// List godoc
// @Summary List join requests
// @Tags ClubRequests
// @Produce json
// @Security BearerAuth
// @Param filter[data][club_id] query string false "Club ID"
// @Param filter[data][student_id] query int false "Student ID"
// @Param filter[data][year] query int false "Academic year"
// @Param filter[data][membership_status] query string false "pending | approved | declined"
// @Param pagination[p] query int false "Page"
// @Param pagination[size] query int false "Page size"
// @Param fetch_level query string false "id_only | compact | default"
// @Success 200 {object} response.Envelope
// @Router /join_requests [get]
func (h *ClubRequestHandler) List(c *gin.Context) {
	var req clubRequestReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.requests.Query(c.Request.Context(), models.ToListQuery(&req, h.cfg.DefaultPageSize, h.cfg.MaxPageSize), req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondPage(c, page)
}

// Get godoc
// @Summary Get join request
// @Tags ClubRequests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /join_requests/{id} [get]
func (h *ClubRequestHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req clubRequestReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	request, err := h.requests.Get(c.Request.Context(), id, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Review godoc
// @Summary Approve or decline a join request
// @Tags ClubRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param payload body object true "Envelope with data: UpdatableClubRequest"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /join_requests/{id} [patch]
func (h *ClubRequestHandler) Review(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req clubRequestReviewRequest
	if err := decodeBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Data == nil {
		response.Error(c, missingData())
		return
	}
	request, err := h.requests.Review(c.Request.Context(), userFromContext(c), id, *req.Data, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}
