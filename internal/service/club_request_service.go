package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

type clubRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ClubRequestRow, error)
	Query(ctx context.Context, lq models.ListQuery[models.QueryableClubRequest]) ([]models.ClubRequestRow, int, error)
	Create(ctx context.Context, c models.CreatableClubRequest) (uuid.UUID, error)
	UpdateByID(ctx context.Context, id uuid.UUID, u models.UpdatableClubRequest) error
}

type clubFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ClubRow, error)
}

type joinLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error)
}

type joinLockRecorder interface {
	RecordJoinLock(outcome string)
}

// ClubRequestConfig tunes the join flow.
type ClubRequestConfig struct {
	LockTTL time.Duration
}

// ClubRequestService handles join requests and their review.
type ClubRequestService struct {
	repo      clubRequestRepository
	clubs     clubFinder
	views     *ViewBuilder
	authz     clubAuthorizer
	locks     joinLocker
	recorder  joinLockRecorder
	calendar  AcademicCalendar
	config    ClubRequestConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClubRequestService constructs the join request service. recorder may be nil.
func NewClubRequestService(
	repo clubRequestRepository,
	clubs clubFinder,
	views *ViewBuilder,
	authz clubAuthorizer,
	locks joinLocker,
	recorder joinLockRecorder,
	calendar AcademicCalendar,
	config ClubRequestConfig,
	validate *validator.Validate,
	logger *zap.Logger,
) *ClubRequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.LockTTL <= 0 {
		config.LockTTL = 10 * time.Second
	}
	return &ClubRequestService{
		repo:      repo,
		clubs:     clubs,
		views:     views,
		authz:     authz,
		locks:     locks,
		recorder:  recorder,
		calendar:  calendar,
		config:    config,
		validator: validate,
		logger:    logger,
	}
}

// Get returns a join request projected at plan.
func (s *ClubRequestService) Get(ctx context.Context, id uuid.UUID, plan models.FetchPlan) (dto.ClubRequest, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, err, "join request", "get")
	}
	view, err := s.views.ClubRequest(ctx, *row, plan)
	if err != nil {
		return nil, storageError(s.logger, err, "join request", "project")
	}
	return view, nil
}

// Query lists join requests projected at plan.
func (s *ClubRequestService) Query(ctx context.Context, lq models.ListQuery[models.QueryableClubRequest], plan models.FetchPlan) (*Page[dto.ClubRequest], error) {
	rows, total, err := s.repo.Query(ctx, lq)
	if err != nil {
		return nil, storageError(s.logger, err, "join request", "query")
	}
	items := make([]dto.ClubRequest, 0, len(rows))
	for _, row := range rows {
		view, err := s.views.ClubRequest(ctx, row, plan)
		if err != nil {
			return nil, storageError(s.logger, err, "join request", "project")
		}
		items = append(items, view)
	}
	return newPage(items, lq.Page, lq.Size, total), nil
}

func (s *ClubRequestService) recordLock(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordJoinLock(outcome)
	}
}

// Join files a pending request for the calling student. A student may hold at
// most one pending or approved request per club and academic year.
func (s *ClubRequestService) Join(ctx context.Context, user *models.User, clubID uuid.UUID, plan models.FetchPlan) (dto.ClubRequest, error) {
	studentID, ok := user.StudentID()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only students may join clubs")
	}
	if _, err := s.clubs.FindByID(ctx, clubID); err != nil {
		return nil, storageError(s.logger, err, "club", "get")
	}

	year := int64(s.calendar.CurrentYear())
	key := fmt.Sprintf("club-join:%s:%d:%d", clubID, studentID, year)
	release, acquired, err := s.locks.Acquire(ctx, key, s.config.LockTTL)
	switch {
	case err != nil:
		// Create still serialises per (club, student, year) in the database.
		s.recordLock(JoinLockError)
		s.logger.Warn("join lock unavailable", zap.String("key", key), zap.Error(err))
	case !acquired:
		s.recordLock(JoinLockBusy)
		return nil, appErrors.Clone(appErrors.ErrConflict, "a join request for this club is already being processed")
	default:
		s.recordLock(JoinLockAcquired)
		defer release()
	}

	id, err := s.repo.Create(ctx, models.CreatableClubRequest{
		ClubID:           clubID,
		StudentID:        studentID,
		Year:             year,
		MembershipStatus: models.StatusPending,
	})
	if errors.Is(err, models.ErrActiveClubRequest) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student already has a pending or approved request for this club this year")
	}
	if err != nil {
		return nil, storageError(s.logger, err, "join request", "create")
	}
	s.logger.Info("join request created", zap.String("club_id", clubID.String()), zap.Int64("student_id", studentID), zap.Int64("year", year))

	return s.Get(ctx, id, plan)
}

// Review approves or declines a request as staff of the request's club.
func (s *ClubRequestService) Review(ctx context.Context, user *models.User, id uuid.UUID, u models.UpdatableClubRequest, plan models.FetchPlan) (dto.ClubRequest, error) {
	if err := s.validator.Struct(u); err != nil {
		return nil, appErrors.BadRequest(err, "membership_status is required")
	}
	switch *u.MembershipStatus {
	case models.StatusApproved, models.StatusDeclined:
	default:
		return nil, appErrors.Clone(appErrors.ErrBadRequest, "membership_status must be approved or declined")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, err, "join request", "get")
	}
	if err := s.authz.EnsureClubStaff(ctx, user, row.ClubID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateByID(ctx, id, u); err != nil {
		return nil, storageError(s.logger, err, "join request", "update")
	}
	return s.Get(ctx, id, plan)
}
