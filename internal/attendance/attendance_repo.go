package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)
	FindAll(ctx context.Context, filter ListAttendanceQuery) ([]Attendance, error)
	Update(ctx context.Context, rec *Attendance) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, rec *Attendance) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var rec Attendance
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error) {
	var rec Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindAll(ctx context.Context, filter ListAttendanceQuery) ([]Attendance, error) {
	var recs []Attendance
	q := r.db.WithContext(ctx).Order("date DESC, check_in DESC")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Month != 0 && filter.Year != 0 {
		// Dates are zero-padded YYYY-MM-DD strings, so a prefix match
		// selects the whole month.
		q = q.Where("date LIKE ?", monthPrefix(filter.Year, filter.Month)+"%")
	}
	err := q.Find(&recs).Error
	return recs, err
}

func (r *repository) Update(ctx context.Context, rec *Attendance) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Attendance{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
