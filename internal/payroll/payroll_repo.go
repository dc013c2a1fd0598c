package payroll

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListPayableEmployees(ctx context.Context) ([]PayableEmployee, error)
	SumUnpaidFines(ctx context.Context, employeeID string) (float64, error)
	MarkFinesPaid(ctx context.Context, employeeID string) error
	CountApprovedLeaves(ctx context.Context, employeeID string, monthPrefix string) (int, error)
	Upsert(ctx context.Context, rec *PayrollRecord) error
	FindAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollRecord, error)
	ListStatuses(ctx context.Context, month, year int) (map[string]string, error)
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) ListPayableEmployees(ctx context.Context) ([]PayableEmployee, error) {
	query := `
SELECT id::text, name, salary
FROM employees
WHERE role = 'EMPLOYEE'
ORDER BY name ASC
`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var empls []PayableEmployee
	for rows.Next() {
		var e PayableEmployee
		if err := rows.Scan(&e.ID, &e.Name, &e.Salary); err != nil {
			return nil, err
		}
		empls = append(empls, e)
	}

	return empls, rows.Err()
}

func (r *repository) SumUnpaidFines(ctx context.Context, employeeID string) (float64, error) {
	query := `
SELECT COALESCE(SUM(amount), 0)
FROM fines
WHERE employee_id = $1 AND status = 'Unpaid'
`

	var sum float64
	err := r.queryer().QueryRowContext(ctx, query, employeeID).Scan(&sum)
	return sum, err
}

func (r *repository) MarkFinesPaid(ctx context.Context, employeeID string) error {
	query := `
UPDATE fines
SET status = 'Paid', updated_at = NOW()
WHERE employee_id = $1 AND status = 'Unpaid'
`

	_, err := r.execer().ExecContext(ctx, query, employeeID)
	return err
}

func (r *repository) CountApprovedLeaves(ctx context.Context, employeeID string, monthPrefix string) (int, error) {
	query := `
SELECT COUNT(*)
FROM leaves
WHERE employee_id = $1 AND status = 'Approved' AND start_date LIKE $2
`

	var count int
	err := r.queryer().QueryRowContext(ctx, query, employeeID, monthPrefix+"%").Scan(&count)
	return count, err
}

func (r *repository) Upsert(ctx context.Context, rec *PayrollRecord) error {
	query := `
INSERT INTO payrolls (
	id, employee_id, month, year, base_salary, deductions, net_salary, status, processed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
ON CONFLICT (employee_id, month, year) DO UPDATE SET
	base_salary = EXCLUDED.base_salary,
	deductions = EXCLUDED.deductions,
	net_salary = EXCLUDED.net_salary,
	status = EXCLUDED.status,
	processed_at = NOW()
`

	_, err := r.execer().ExecContext(
		ctx, query,
		rec.ID, rec.EmployeeID, rec.Month, rec.Year,
		rec.BaseSalary, rec.Deductions, rec.NetSalary, rec.Status,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollRecord, error) {
	query := `
SELECT id::text, employee_id::text, month, year, base_salary, deductions, net_salary, status, processed_at
FROM payrolls
WHERE ($1 = '' OR employee_id::text = $1)
	AND ($2 = 0 OR month = $2)
	AND ($3 = 0 OR year = $3)
ORDER BY year DESC, month DESC, employee_id ASC
`

	rows, err := r.db.QueryContext(ctx, query, filter.EmployeeID, filter.Month, filter.Year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []PayrollRecord
	for rows.Next() {
		var rec PayrollRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.Month,
			&rec.Year,
			&rec.BaseSalary,
			&rec.Deductions,
			&rec.NetSalary,
			&rec.Status,
			&rec.ProcessedAt,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (r *repository) ListStatuses(ctx context.Context, month, year int) (map[string]string, error) {
	query := `
SELECT employee_id::text, status
FROM payrolls
WHERE month = $1 AND year = $2
`

	rows, err := r.db.QueryContext(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]string)
	for rows.Next() {
		var employeeID, status string
		if err := rows.Scan(&employeeID, &status); err != nil {
			return nil, err
		}
		statuses[employeeID] = status
	}

	return statuses, rows.Err()
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) queryer() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
