package fine

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=fine_repo.go -destination=mock/fine_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *Fine) error
	FindByID(ctx context.Context, id string) (*Fine, error)
	FindAll(ctx context.Context, filter ListFinesQuery) ([]Fine, error)
	Update(ctx context.Context, f *Fine) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Fine) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Fine, error) {
	var f Fine
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFinesQuery) ([]Fine, error) {
	var fines []Fine
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Find(&fines).Error
	return fines, err
}

func (r *repository) Update(ctx context.Context, f *Fine) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Fine{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
