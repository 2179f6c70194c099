package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-club-registry-api/internal/dto"
	"github.com/noah-isme/sma-club-registry-api/internal/models"
)

type contactRepository interface {
	Query(ctx context.Context, lq models.ListQuery[models.QueryableContact]) ([]models.ContactRow, int, error)
}

// ContactService handles contact reads.
type ContactService struct {
	repo   contactRepository
	views  *ViewBuilder
	logger *zap.Logger
}

// NewContactService constructs the contact service.
func NewContactService(repo contactRepository, views *ViewBuilder, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{repo: repo, views: views, logger: logger}
}

// Get returns a contact projected at plan.
func (s *ContactService) Get(ctx context.Context, id int64, plan models.FetchPlan) (dto.Contact, error) {
	contact, err := s.views.ContactByID(ctx, id, plan)
	if err != nil {
		return nil, storageError(s.logger, err, "contact", "get")
	}
	return contact, nil
}

// Query lists contacts projected at plan.
func (s *ContactService) Query(ctx context.Context, lq models.ListQuery[models.QueryableContact], plan models.FetchPlan) (*Page[dto.Contact], error) {
	rows, total, err := s.repo.Query(ctx, lq)
	if err != nil {
		return nil, storageError(s.logger, err, "contact", "query")
	}
	items, err := s.views.contactsFromRows(rows, plan)
	if err != nil {
		return nil, storageError(s.logger, err, "contact", "project")
	}
	return newPage(items, lq.Page, lq.Size, total), nil
}
