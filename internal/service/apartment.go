package service

import (
	"context"
	"fmt"

	"rentalhub/internal/config"
	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/pkg/util"
)

// ApartmentService handles apartment listings
type ApartmentService struct {
	repo repository.IApartmentRepository
}

func NewApartmentService(repo repository.IApartmentRepository) *ApartmentService {
	return &ApartmentService{repo: repo}
}

// List returns one page of apartments. A nil size returns every apartment.
func (s *ApartmentService) List(ctx context.Context, q model.PageQuery) ([]*model.Apartment, error) {
	page, size := 1, 0
	if q.Page != nil {
		page = *q.Page
	}
	if q.Size != nil {
		size = *q.Size
	}
	skip, limit := util.Window(page, size, config.MaxPageSize)

	apts, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	if apts == nil {
		apts = []*model.Apartment{}
	}
	return apts, nil
}

func (s *ApartmentService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count apartments: %w", err)
	}
	return n, nil
}

func (s *ApartmentService) Create(ctx context.Context, req *model.ApartmentRequest) (model.InsertResult, error) {
	apt := req.ToApartment()
	id, err := s.repo.Create(ctx, apt)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create apartment: %w", err)
	}
	return model.NewInsertResult(id), nil
}
