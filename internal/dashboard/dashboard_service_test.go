package dashboard_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/dashboard"

	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepo struct {
	countActiveEmployeesFn func(ctx context.Context) (int64, error)
	countPresentOnFn       func(ctx context.Context, date string) (int64, error)
	countPendingLeavesFn   func(ctx context.Context) (int64, error)
	countOnLeaveFn         func(ctx context.Context, date string) (int64, error)
	sumUnpaidFinesFn       func(ctx context.Context) (float64, error)
	sumMonthlyPayrollFn    func(ctx context.Context, month, year int) (float64, error)
}

func (f *fakeDashboardRepo) CountActiveEmployees(ctx context.Context) (int64, error) {
	if f.countActiveEmployeesFn != nil {
		return f.countActiveEmployeesFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepo) CountPresentOn(ctx context.Context, date string) (int64, error) {
	if f.countPresentOnFn != nil {
		return f.countPresentOnFn(ctx, date)
	}
	return 0, nil
}

func (f *fakeDashboardRepo) CountPendingLeaves(ctx context.Context) (int64, error) {
	if f.countPendingLeavesFn != nil {
		return f.countPendingLeavesFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepo) CountOnLeave(ctx context.Context, date string) (int64, error) {
	if f.countOnLeaveFn != nil {
		return f.countOnLeaveFn(ctx, date)
	}
	return 0, nil
}

func (f *fakeDashboardRepo) SumUnpaidFines(ctx context.Context) (float64, error) {
	if f.sumUnpaidFinesFn != nil {
		return f.sumUnpaidFinesFn(ctx)
	}
	return 0, nil
}

func (f *fakeDashboardRepo) SumMonthlyPayroll(ctx context.Context, month, year int) (float64, error) {
	if f.sumMonthlyPayrollFn != nil {
		return f.sumMonthlyPayrollFn(ctx, month, year)
	}
	return 0, nil
}

func TestDashboardService_Stats(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	repo := &fakeDashboardRepo{
		countActiveEmployeesFn: func(ctx context.Context) (int64, error) { return 10, nil },
		countPresentOnFn: func(ctx context.Context, date string) (int64, error) {
			assert.Equal(t, "2026-03-02", date)
			return 6, nil
		},
		countPendingLeavesFn: func(ctx context.Context) (int64, error) { return 2, nil },
		countOnLeaveFn:       func(ctx context.Context, date string) (int64, error) { return 1, nil },
		sumUnpaidFinesFn:     func(ctx context.Context) (float64, error) { return 1500, nil },
		sumMonthlyPayrollFn: func(ctx context.Context, month, year int) (float64, error) {
			assert.Equal(t, 3, month)
			assert.Equal(t, 2026, year)
			return 83000, nil
		},
	}
	svc := dashboard.NewServiceWithClock(repo, func() time.Time { return now })

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalEmployees)
	assert.Equal(t, int64(6), stats.PresentToday)
	assert.Equal(t, int64(3), stats.AbsentToday)
	assert.Equal(t, int64(2), stats.PendingLeaves)
	assert.Equal(t, int64(1), stats.OnLeaveToday)
	assert.Equal(t, 1500.0, stats.UnpaidFines)
	assert.Equal(t, 83000.0, stats.MonthlyPayroll)
}

func TestDashboardService_Stats_AbsentNeverNegative(t *testing.T) {
	repo := &fakeDashboardRepo{
		countActiveEmployeesFn: func(ctx context.Context) (int64, error) { return 2, nil },
		countPresentOnFn:       func(ctx context.Context, date string) (int64, error) { return 2, nil },
		countOnLeaveFn:         func(ctx context.Context, date string) (int64, error) { return 1, nil },
	}
	svc := dashboard.NewService(repo)

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.AbsentToday)
}
