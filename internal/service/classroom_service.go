package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

type classroomRepository interface {
	Query(ctx context.Context, lq models.ListQuery[models.QueryableClassroom]) ([]models.ClassroomRow, int, error)
}

// ClassroomService handles classroom reads.
type ClassroomService struct {
	repo   classroomRepository
	views  *ViewBuilder
	logger *zap.Logger
}

// NewClassroomService constructs the classroom service.
func NewClassroomService(repo classroomRepository, views *ViewBuilder, logger *zap.Logger) *ClassroomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{repo: repo, views: views, logger: logger}
}

// Get returns a classroom projected at plan.
func (s *ClassroomService) Get(ctx context.Context, id int64, plan models.FetchPlan) (dto.Classroom, error) {
	classroom, err := s.views.ClassroomByID(ctx, id, plan)
	if err != nil {
		return nil, storageError(s.logger, err, "classroom", "get")
	}
	return classroom, nil
}

// Query lists classrooms projected at plan.
func (s *ClassroomService) Query(ctx context.Context, lq models.ListQuery[models.QueryableClassroom], plan models.FetchPlan) (*Page[dto.Classroom], error) {
	rows, total, err := s.repo.Query(ctx, lq)
	if err != nil {
		return nil, storageError(s.logger, err, "classroom", "query")
	}
	items := make([]dto.Classroom, 0, len(rows))
	for _, row := range rows {
		classroom, err := s.views.Classroom(ctx, row, plan)
		if err != nil {
			return nil, storageError(s.logger, err, "classroom", "project")
		}
		items = append(items, classroom)
	}
	return newPage(items, lq.Page, lq.Size, total), nil
}
