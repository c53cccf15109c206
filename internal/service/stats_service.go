package service

import (
	"context"
	"fmt"

	"vibescore/internal/domain"
	"vibescore/pkg/e"
)

const defaultStatsWindow = 60

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.CheckInStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = defaultStatsWindow
	}
	if minutes < 0 || minutes > 1440 {
		return nil, fmt.Errorf("service.GetStats: minutes=%d: %w", minutes, e.ErrInvalidInput)
	}

	unique, err := s.repo.CountUniqueUsers(ctx, minutes)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountTotalCheckIns(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.CheckInStats{
		UserCount:     unique,
		TotalCheckIns: total,
		Minutes:       minutes,
	}, nil
}
