package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   Repository
	nowFn  func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, time.Now, logger...)
}

func NewServiceWithClock(repo Repository, nowFn func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, nowFn: nowFn, logger: l}
}

func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	now := s.nowFn()
	today := now.Format("2006-01-02")

	total, err := s.repo.CountActiveEmployees(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	present, err := s.repo.CountPresentOn(ctx, today)
	if err != nil {
		return StatsResponse{}, err
	}

	pendingLeaves, err := s.repo.CountPendingLeaves(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	onLeave, err := s.repo.CountOnLeave(ctx, today)
	if err != nil {
		return StatsResponse{}, err
	}

	unpaidFines, err := s.repo.SumUnpaidFines(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	monthlyPayroll, err := s.repo.SumMonthlyPayroll(ctx, int(now.Month()), now.Year())
	if err != nil {
		return StatsResponse{}, err
	}

	absent := total - present - onLeave
	if absent < 0 {
		absent = 0
	}

	return StatsResponse{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
		PendingLeaves:  pendingLeaves,
		OnLeaveToday:   onLeave,
		UnpaidFines:    unpaidFines,
		MonthlyPayroll: monthlyPayroll,
	}, nil
}
