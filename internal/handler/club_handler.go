package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	"github.com/noah-isme/sma-club-registry-api/internal/service"
	"github.com/noah-isme/sma-club-registry-api/pkg/export"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
	"github.com/noah-isme/sma-club-registry-api/pkg/response"
)

type (
	clubReadRequest    = models.Request[NoData, models.QueryableClub, models.ClubSortableField]
	clubUpdateRequest  = models.Request[models.UpdatableClub, models.QueryableClub, models.ClubSortableField]
	clubContactRequest = models.Request[models.CreatableContact, models.QueryableClub, models.ClubSortableField]
	joinRequest        = models.Request[NoData, models.QueryableClubRequest, models.ClubRequestSortableField]
)

type clubService interface {
	Get(ctx context.Context, id uuid.UUID, plan models.FetchPlan) (dto.Club, error)
	Query(ctx context.Context, lq models.ListQuery[models.QueryableClub], plan models.FetchPlan) (*service.Page[dto.Club], error)
	Update(ctx context.Context, user *models.User, id uuid.UUID, u models.UpdatableClub, plan models.FetchPlan) (dto.Club, error)
	AddContact(ctx context.Context, user *models.User, id uuid.UUID, c models.CreatableContact, plan models.FetchPlan) (dto.Club, error)
	ExportMembers(ctx context.Context, user *models.User, id uuid.UUID, format export.Format) (*service.ExportFile, error)
}

type clubJoiner interface {
	Join(ctx context.Context, user *models.User, clubID uuid.UUID, plan models.FetchPlan) (dto.ClubRequest, error)
}

// ClubHandler exposes club endpoints.
type ClubHandler struct {
	clubs    clubService
	requests clubJoiner
	cfg      ListConfig
}

// NewClubHandler constructs ClubHandler.
func NewClubHandler(clubs clubService, requests clubJoiner, cfg ListConfig) *ClubHandler {
	return &ClubHandler{clubs: clubs, requests: requests, cfg: cfg.withDefaults()}
}

// List godoc
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param filter[data][name] query string false "Name contains (th or en)"
// @Param filter[data][house] query string false "Activity day house"
// @Param filter[q] query string false "Free-text search"
// @Param sorting[by][] query []string false "Sort fields" collectionFormat(multi)
// @Param sorting[ascending] query bool false "Sort direction"
// @Param pagination[p] query int false "Page"
// @Param pagination[size] query int false "Page size"
// @Param fetch_level query string false "id_only | compact | default"
// @Param descendant_fetch_level query string false "id_only | compact | default"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /clubs [get]
func (h *ClubHandler) List(c *gin.Context) {
	var req clubReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	page, err := h.clubs.Query(c.Request.Context(), models.ToListQuery(&req, h.cfg.DefaultPageSize, h.cfg.MaxPageSize), req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondPage(c, page)
}

// Get godoc
// @Summary Get club
// @Tags Clubs
// @Produce json
// @Param id path string true "Club ID"
// @Param fetch_level query string false "id_only | compact | default"
// @Param descendant_fetch_level query string false "id_only | compact | default"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /clubs/{id} [get]
func (h *ClubHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req clubReadRequest
	if err := decodeQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	club, err := h.clubs.Get(c.Request.Context(), id, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, club, nil)
}

// Update godoc
// @Summary Update club
// @Description Partial update; only club staff of the current academic year may call it.
// @Tags Clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param payload body object true "Envelope with data: UpdatableClub"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /clubs/{id} [patch]
func (h *ClubHandler) Update(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req clubUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Data == nil {
		response.Error(c, missingData())
		return
	}
	club, err := h.clubs.Update(c.Request.Context(), userFromContext(c), id, *req.Data, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, club, nil)
}

// AddContact godoc
// @Summary Attach a contact to a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param payload body object true "Envelope with data: CreatableContact"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /clubs/{id}/contacts [post]
func (h *ClubHandler) AddContact(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req clubContactRequest
	if err := decodeBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Data == nil {
		response.Error(c, missingData())
		return
	}
	club, err := h.clubs.AddContact(c.Request.Context(), userFromContext(c), id, *req.Data, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, club)
}

// Join godoc
// @Summary Request to join a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /clubs/{id}/join [post]
func (h *ClubHandler) Join(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req joinRequest
	if err := decodeBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	request, err := h.requests.Join(c.Request.Context(), userFromContext(c), id, req.Plan(h.cfg.MaxFetchDepth))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// ExportMembers godoc
// @Summary Export club roster
// @Tags Clubs
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param format query string false "csv | pdf"
// @Success 200 {file} file
// @Failure 403 {object} response.Envelope
// @Router /clubs/{id}/members/export [get]
func (h *ClubHandler) ExportMembers(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.BadRequest(err, err.Error()))
		return
	}
	file, err := h.clubs.ExportMembers(c.Request.Context(), userFromContext(c), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
