package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

type staffChecker interface {
	IsStaff(ctx context.Context, clubID uuid.UUID, studentID int64, year int) (bool, error)
}

// AuthorizationService answers whether a user may mutate a club's data.
type AuthorizationService struct {
	staff    staffChecker
	calendar AcademicCalendar
	logger   *zap.Logger
}

// NewAuthorizationService constructs the authorization service.
func NewAuthorizationService(staff staffChecker, calendar AcademicCalendar, logger *zap.Logger) *AuthorizationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthorizationService{staff: staff, calendar: calendar, logger: logger}
}

// EnsureClubStaff returns nil only when user is a student on the club's staff
// for the current academic year.
func (s *AuthorizationService) EnsureClubStaff(ctx context.Context, user *models.User, clubID uuid.UUID) error {
	if user == nil {
		return appErrors.ErrUnauthorized
	}
	studentID, ok := user.StudentID()
	if !ok {
		return appErrors.Clone(appErrors.ErrForbidden, "only club staff may modify this club")
	}

	isStaff, err := s.staff.IsStaff(ctx, clubID, studentID, s.calendar.CurrentYear())
	if err != nil {
		return storageError(s.logger, err, "club staff", "check")
	}
	if !isStaff {
		return appErrors.Clone(appErrors.ErrForbidden, "only club staff may modify this club")
	}
	return nil
}
