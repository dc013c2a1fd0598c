package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	FindByLeadID(ctx context.Context, leadID string) (*LeadPermission, error)
	Upsert(ctx context.Context, p *LeadPermission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByLeadID(ctx context.Context, leadID string) (*LeadPermission, error) {
	var p LeadPermission
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		First(&p).Error
	return &p, err
}

func (r *repository) Upsert(ctx context.Context, p *LeadPermission) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lead_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"modules", "updated_at"}),
		}).
		Create(p).Error
}
