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

type classroomReadRequest = models.Request[NoData, models.QueryableClassroom, models.ClassroomSortableField]

type classroomService interface {
	Get(ctx context.Context, id int64, plan models.FetchPlan) (dto.Classroom, error)
	Query(ctx context.Context, lq models.ListQuery[models.QueryableClassroom], plan models.FetchPlan) (*service.Page[dto.Classroom], error)
}

// ClassroomHandler exposes classroom endpoints.
type ClassroomHandler struct {
	classrooms classroomService
	cfg        ListConfig
}

// NewClassroomHandler constructs ClassroomHandler.
func NewClassroomHandler(classrooms classroomService, cfg ListConfig) *ClassroomHandler {
	return &ClassroomHandler{classrooms: classrooms, cfg: cfg.withDefaults()}
}

// List godoc
// @Summary List classrooms
// @Tags Classrooms
// @Produce json
// @Security BearerAuth
// @Param filter[data][number] query int false "Room number"
// @Param filter[data][year] query int false "Academic year"
// @Param pagination[p] query int false "Page"
// @Param pagination[size] query int false "Page size"
// @Param fetch_level query string false "id_only | compact | default"
// @Param descendant_fetch_level query string false "id_only | compact | default"
// @Success 200 {object} response.Envelope
// @Router /classrooms [get]
func (h *ClassroomHandler) List(c *gin.Context) {
	var req classroomReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.classrooms.Query(c.Request.Context(), models.ToListQuery(&req, h.cfg.DefaultPageSize, h.cfg.MaxPageSize), req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondPage(c, page)
}

// Get godoc
// @Summary Get classroom
// @Tags Classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classrooms/{id} [get]
func (h *ClassroomHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req classroomReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	classroom, err := h.classrooms.Get(c.Request.Context(), id, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classroom, nil)
}
