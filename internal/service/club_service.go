package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
	"github.com/noah-isme/sma-club-registry-api/pkg/export"
)

type clubRepository interface {
	clubReader
	Query(ctx context.Context, lq models.ListQuery[models.QueryableClub]) ([]models.ClubRow, int, error)
	UpdateByID(ctx context.Context, id uuid.UUID, u models.UpdatableClub) error
	CreateContact(ctx context.Context, clubID uuid.UUID, c models.CreatableContact) (int64, error)
}

type clubAuthorizer interface {
	EnsureClubStaff(ctx context.Context, user *models.User, clubID uuid.UUID) error
}

// ExportFile is a rendered roster.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ClubService handles club use-cases.
type ClubService struct {
	repo      clubRepository
	views     *ViewBuilder
	authz     clubAuthorizer
	calendar  AcademicCalendar
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClubService constructs the club service.
func NewClubService(repo clubRepository, views *ViewBuilder, authz clubAuthorizer, calendar AcademicCalendar, validate *validator.Validate, logger *zap.Logger) *ClubService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClubService{repo: repo, views: views, authz: authz, calendar: calendar, validator: validate, logger: logger}
}

// Get returns a club projected at plan.
func (s *ClubService) Get(ctx context.Context, id uuid.UUID, plan models.FetchPlan) (dto.Club, error) {
	club, err := s.views.ClubByID(ctx, id, plan)
	if err != nil {
		return nil, storageError(s.logger, err, "club", "get")
	}
	return club, nil
}

// Query lists clubs projected at plan.
func (s *ClubService) Query(ctx context.Context, lq models.ListQuery[models.QueryableClub], plan models.FetchPlan) (*Page[dto.Club], error) {
	rows, total, err := s.repo.Query(ctx, lq)
	if err != nil {
		return nil, storageError(s.logger, err, "club", "query")
	}
	items := make([]dto.Club, 0, len(rows))
	for _, row := range rows {
		club, err := s.views.Club(ctx, row, plan)
		if err != nil {
			return nil, storageError(s.logger, err, "club", "project")
		}
		items = append(items, club)
	}
	return newPage(items, lq.Page, lq.Size, total), nil
}

// Update applies a partial update as club staff and returns the re-read club.
func (s *ClubService) Update(ctx context.Context, user *models.User, id uuid.UUID, u models.UpdatableClub, plan models.FetchPlan) (dto.Club, error) {
	if err := s.validator.Struct(u); err != nil {
		return nil, appErrors.BadRequest(err, "invalid club payload")
	}
	if err := s.authz.EnsureClubStaff(ctx, user, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateByID(ctx, id, u); err != nil {
		return nil, storageError(s.logger, err, "club", "update")
	}
	return s.Get(ctx, id, plan)
}

// AddContact attaches a new contact as club staff and returns the re-read club.
func (s *ClubService) AddContact(ctx context.Context, user *models.User, id uuid.UUID, c models.CreatableContact, plan models.FetchPlan) (dto.Club, error) {
	if err := s.validator.Struct(c); err != nil {
		return nil, appErrors.BadRequest(err, "invalid contact payload")
	}
	if !c.Type.Valid() {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("unknown contact type %q", c.Type))
	}
	if err := s.authz.EnsureClubStaff(ctx, user, id); err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateContact(ctx, id, c); err != nil {
		return nil, storageError(s.logger, err, "contact", "create")
	}
	return s.Get(ctx, id, plan)
}

var rosterColumns = []export.Column{
	{Key: "role", Label: "Role", Width: 1},
	{Key: "student_id", Label: "Student ID", Width: 1.2},
	{Key: "name_th", Label: "Name (TH)", Width: 3},
	{Key: "name_en", Label: "Name (EN)", Width: 3},
	{Key: "nickname", Label: "Nickname", Width: 1.5},
}

// ExportMembers renders the club's staff and approved members for the current
// academic year. Only club staff may export.
func (s *ClubService) ExportMembers(ctx context.Context, user *models.User, id uuid.UUID, format export.Format) (*ExportFile, error) {
	if err := s.authz.EnsureClubStaff(ctx, user, id); err != nil {
		return nil, err
	}
	club, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, err, "club", "get")
	}

	year := s.calendar.CurrentYear()
	staffs, err := s.repo.StaffRows(ctx, id, year)
	if err != nil {
		return nil, storageError(s.logger, err, "club staff", "list")
	}
	members, err := s.repo.MemberRows(ctx, id, year)
	if err != nil {
		return nil, storageError(s.logger, err, "club member", "list")
	}

	rows := make([]map[string]string, 0, len(staffs)+len(members))
	for _, st := range staffs {
		rows = append(rows, rosterRow("staff", st))
	}
	for _, m := range members {
		rows = append(rows, rosterRow("member", m))
	}

	title := club.NameTH
	if club.NameEN != nil && *club.NameEN != "" {
		title = fmt.Sprintf("%s (%s)", club.NameTH, *club.NameEN)
	}
	body, err := export.RendererFor(format).Render(export.Dataset{
		Title:    title,
		Subtitle: fmt.Sprintf("Academic year %d", year),
		Columns:  rosterColumns,
		Rows:     rows,
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render club roster")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("club-%s-%d.%s", id, year, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func rosterRow(role string, st models.StudentRow) map[string]string {
	nameEN := strings.Join(strings.Fields(deref(st.PrefixEN)+" "+deref(st.FirstNameEN)+" "+deref(st.LastNameEN)), " ")
	return map[string]string{
		"role":       role,
		"student_id": st.StdID,
		"name_th":    st.PrefixTH + st.FirstNameTH + " " + st.LastNameTH,
		"name_en":    nameEN,
		"nickname":   deref(st.NicknameTH),
	}
}
