package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

type studentRepository interface {
	Query(ctx context.Context, lq models.ListQuery[models.QueryableStudent]) ([]models.StudentRow, int, error)
}

// StudentService handles student reads.
type StudentService struct {
	repo   studentRepository
	views  *ViewBuilder
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, views *ViewBuilder, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, views: views, logger: logger}
}

// Get returns a student projected at plan.
func (s *StudentService) Get(ctx context.Context, id int64, plan models.FetchPlan) (dto.Student, error) {
	student, err := s.views.StudentByID(ctx, id, plan)
	if err != nil {
		return nil, storageError(s.logger, err, "student", "get")
	}
	return student, nil
}

// Query lists students projected at plan.
func (s *StudentService) Query(ctx context.Context, lq models.ListQuery[models.QueryableStudent], plan models.FetchPlan) (*Page[dto.Student], error) {
	rows, total, err := s.repo.Query(ctx, lq)
	if err != nil {
		return nil, storageError(s.logger, err, "student", "query")
	}
	items := make([]dto.Student, 0, len(rows))
	for _, row := range rows {
		student, err := s.views.Student(ctx, row, plan)
		if err != nil {
			return nil, storageError(s.logger, err, "student", "project")
		}
		items = append(items, student)
	}
	return newPage(items, lq.Page, lq.Size, total), nil
}
