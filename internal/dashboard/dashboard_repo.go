package dashboard

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountPresentOn(ctx context.Context, date string) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	CountOnLeave(ctx context.Context, date string) (int64, error)
	SumUnpaidFines(ctx context.Context) (float64, error)
	SumMonthlyPayroll(ctx context.Context, month, year int) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("status = ?", "Active").
		Count(&count).Error
	return count, err
}

func (r *repository) CountPresentOn(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Where("date = ?", date).
		Where("status IN ?", []string{"Present", "Late"}).
		Count(&count).Error
	return count, err
}

func (r *repository) CountPendingLeaves(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leaves").
		Where("status = ?", "Pending").
		Count(&count).Error
	return count, err
}

func (r *repository) CountOnLeave(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leaves").
		Where("status = ?", "Approved").
		Where("start_date <= ?", date).
		Where("end_date >= ?", date).
		Count(&count).Error
	return count, err
}

func (r *repository) SumUnpaidFines(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Table("fines").
		Where("status = ?", "Unpaid").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *repository) SumMonthlyPayroll(ctx context.Context, month, year int) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Table("payrolls").
		Where("month = ?", month).
		Where("year = ?", year).
		Select("COALESCE(SUM(net_salary), 0)").
		Scan(&sum).Error
	return sum, err
}
