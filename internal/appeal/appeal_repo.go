package appeal

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=appeal_repo.go -destination=mock/appeal_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Appeal) error
	FindByID(ctx context.Context, id string) (*Appeal, error)
	FindAll(ctx context.Context, filter ListAppealsQuery) ([]Appeal, error)
	Update(ctx context.Context, a *Appeal) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Appeal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Appeal, error) {
	var a Appeal
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context, filter ListAppealsQuery) ([]Appeal, error) {
	var appeals []Appeal
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.SubjectType != "" {
		q = q.Where("subject_type = ?", filter.SubjectType)
	}
	err := q.Find(&appeals).Error
	return appeals, err
}

func (r *repository) Update(ctx context.Context, a *Appeal) error {
	return r.db.WithContext(ctx).Save(a).Error
}
