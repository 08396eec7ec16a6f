package service

import (
	"context"
	"fmt"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/internal/sanitize"
)

type AnnouncementService struct {
	repo repository.IAnnouncementRepository
	now  func() time.Time
}

func NewAnnouncementService(repo repository.IAnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo, now: time.Now}
}

// Create stores an announcement as plain text with markup stripped
func (s *AnnouncementService) Create(ctx context.Context, req *model.AnnouncementRequest) (model.InsertResult, error) {
	a := &model.Announcement{
		Title:       sanitize.Text(req.Title),
		Description: sanitize.Text(req.Description),
		Timestamp:   s.now(),
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return model.NewInsertResult(id), nil
}

func (s *AnnouncementService) List(ctx context.Context) ([]*model.Announcement, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	if list == nil {
		list = []*model.Announcement{}
	}
	return list, nil
}
