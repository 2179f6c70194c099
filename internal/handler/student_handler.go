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

type studentReadRequest = models.Request[NoData, models.QueryableStudent, models.StudentSortableField]

type studentService interface {
	Get(ctx context.Context, id int64, plan models.FetchPlan) (dto.Student, error)
	Query(ctx context.Context, lq models.ListQuery[models.QueryableStudent], plan models.FetchPlan) (*service.Page[dto.Student], error)
}

// StudentHandler exposes read-only student endpoints.
type StudentHandler struct {
	students studentService
	cfg      ListConfig
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService, cfg ListConfig) *StudentHandler {
	return &StudentHandler{students: students, cfg: cfg.withDefaults()}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param filter[data][student_id] query string false "Student number"
// @Param filter[data][first_name] query string false "First name contains"
// @Param filter[q] query string false "Free-text search"
// @Param sorting[by][] query []string false "Sort fields" collectionFormat(multi)
// @Param pagination[p] query int false "Page"
// @Param pagination[size] query int false "Page size"
// @Param fetch_level query string false "id_only | compact | default"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var req studentReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.students.Query(c.Request.Context(), models.ToListQuery(&req, h.cfg.DefaultPageSize, h.cfg.MaxPageSize), req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondPage(c, page)
}

// Get godoc
// @Summary Get student
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req studentReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Get(c.Request.Context(), id, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}
