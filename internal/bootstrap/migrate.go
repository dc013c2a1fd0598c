package bootstrap

import (
	"go-hrms/internal/appeal"
	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/fine"
	"go-hrms/internal/leave"
	"go-hrms/internal/rbac"
	"go-hrms/internal/settings"

	"gorm.io/gorm"
)

// Payrolls and the outbox are written through database/sql, so their
// tables are created here rather than via AutoMigrate.
const payrollsTable = `
CREATE TABLE IF NOT EXISTS payrolls (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL,
	month INT NOT NULL,
	year INT NOT NULL,
	base_salary DOUBLE PRECISION NOT NULL DEFAULT 0,
	deductions DOUBLE PRECISION NOT NULL DEFAULT 0,
	net_salary DOUBLE PRECISION NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_payroll_period UNIQUE (employee_id, month, year)
)`

const outboxTable = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload BYTEA NOT NULL,
	status TEXT NOT NULL,
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&leave.Leave{},
		&fine.Fine{},
		&appeal.Appeal{},
		&settings.Settings{},
		&rbac.LeadPermission{},
	); err != nil {
		return err
	}

	if err := db.Exec(payrollsTable).Error; err != nil {
		return err
	}
	return db.Exec(outboxTable).Error
}
