package service

import (
	"context"
	"fmt"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/pkg/timer"

	"go.uber.org/zap"
)

// StatsService builds the admin report
type StatsService struct {
	apartments repository.IApartmentRepository
	members    repository.IMemberRepository
	users      repository.IUserRepository
	log        *zap.Logger
}

func NewStatsService(
	apartments repository.IApartmentRepository,
	members repository.IMemberRepository,
	users repository.IUserRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{apartments: apartments, members: members, users: users, log: logger}
}

// AdminStats sums rooms over apartments and member records and counts users
// by role. AvailableRooms is not floored at zero.
func (s *StatsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	sw := timer.NewStopwatch(s.log, "admin stats")
	defer sw.Total()

	total, err := s.apartments.SumRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum apartment rooms: %w", err)
	}
	agreed, err := s.members.SumRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum member rooms: %w", err)
	}
	sw.Lap("rooms")

	users, err := s.users.CountByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	members, err := s.users.CountByRole(ctx, model.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	sw.Lap("roles")

	stats := &model.AdminStats{
		TotalRooms:     total,
		AgreedRooms:    agreed,
		AvailableRooms: total - agreed,
		Users:          users,
		Members:        members,
	}
	if total != 0 {
		stats.AvailablePercentage = float64(stats.AvailableRooms) / float64(total) * 100
		stats.AgreedPercentage = float64(agreed) / float64(total) * 100
	}
	return stats, nil
}
