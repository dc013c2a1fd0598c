package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollRepository struct {
	withTxFn               func(tx *sql.Tx) payroll.Repository
	listPayableEmployeesFn func(ctx context.Context) ([]payroll.PayableEmployee, error)
	sumUnpaidFinesFn       func(ctx context.Context, employeeID string) (float64, error)
	markFinesPaidFn        func(ctx context.Context, employeeID string) error
	countApprovedLeavesFn  func(ctx context.Context, employeeID string, monthPrefix string) (int, error)
	upsertFn               func(ctx context.Context, rec *payroll.PayrollRecord) error
	findAllFn              func(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollRecord, error)
	listStatusesFn         func(ctx context.Context, month, year int) (map[string]string, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) ListPayableEmployees(ctx context.Context) ([]payroll.PayableEmployee, error) {
	if f.listPayableEmployeesFn != nil {
		return f.listPayableEmployeesFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) SumUnpaidFines(ctx context.Context, employeeID string) (float64, error) {
	if f.sumUnpaidFinesFn != nil {
		return f.sumUnpaidFinesFn(ctx, employeeID)
	}
	return 0, nil
}

func (f *fakePayrollRepository) MarkFinesPaid(ctx context.Context, employeeID string) error {
	if f.markFinesPaidFn != nil {
		return f.markFinesPaidFn(ctx, employeeID)
	}
	return nil
}

func (f *fakePayrollRepository) CountApprovedLeaves(ctx context.Context, employeeID string, monthPrefix string) (int, error) {
	if f.countApprovedLeavesFn != nil {
		return f.countApprovedLeavesFn(ctx, employeeID, monthPrefix)
	}
	return 0, nil
}

func (f *fakePayrollRepository) Upsert(ctx context.Context, rec *payroll.PayrollRecord) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, rec)
	}
	return nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollRecord, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakePayrollRepository) ListStatuses(ctx context.Context, month, year int) (map[string]string, error) {
	if f.listStatusesFn != nil {
		return f.listStatusesFn(ctx, month, year)
	}
	return map[string]string{}, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	svc := payroll.NewService(db, repo)

	return &payrollServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPayrollService_Process_DeductsUnpaidFines(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	fines := map[string]float64{employeeID: 700}
	marked := false

	deps.repo.listPayableEmployeesFn = func(ctx context.Context) ([]payroll.PayableEmployee, error) {
		return []payroll.PayableEmployee{{ID: employeeID, Name: "Babar Azam", Salary: 45000}}, nil
	}
	deps.repo.sumUnpaidFinesFn = func(ctx context.Context, eid string) (float64, error) {
		return fines[eid], nil
	}
	deps.repo.markFinesPaidFn = func(ctx context.Context, eid string) error {
		marked = true
		fines[eid] = 0
		return nil
	}
	deps.repo.upsertFn = func(ctx context.Context, rec *payroll.PayrollRecord) error {
		assert.Equal(t, 45000.0, rec.BaseSalary)
		assert.Equal(t, 700.0, rec.Deductions)
		assert.Equal(t, 44300.0, rec.NetSalary)
		assert.Equal(t, payroll.StatusPaid, rec.Status)
		return nil
	}

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Process(ctx, actorID, payroll.ProcessPayrollRequest{Month: 3, Year: 2026})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, 44300.0, resp.Records[0].NetSalary)
	assert.True(t, marked)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Process_RerunHasNoDeductions(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	fines := map[string]float64{employeeID: 500}
	var upserted []payroll.PayrollRecord

	deps.repo.listPayableEmployeesFn = func(ctx context.Context) ([]payroll.PayableEmployee, error) {
		return []payroll.PayableEmployee{{ID: employeeID, Name: "Sara Khan", Salary: 38000}}, nil
	}
	deps.repo.sumUnpaidFinesFn = func(ctx context.Context, eid string) (float64, error) {
		return fines[eid], nil
	}
	deps.repo.markFinesPaidFn = func(ctx context.Context, eid string) error {
		fines[eid] = 0
		return nil
	}
	deps.repo.upsertFn = func(ctx context.Context, rec *payroll.PayrollRecord) error {
		upserted = append(upserted, *rec)
		return nil
	}

	req := payroll.ProcessPayrollRequest{Month: 3, Year: 2026}

	expectTx(t, deps.sqlMock, true)
	_, err := deps.service.Process(ctx, actorID, req)
	assert.NoError(t, err)

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Process(ctx, actorID, req)
	assert.NoError(t, err)

	assert.Len(t, upserted, 2)
	assert.Equal(t, 500.0, upserted[0].Deductions)
	assert.Equal(t, 37500.0, upserted[0].NetSalary)
	assert.Equal(t, 0.0, upserted[1].Deductions)
	assert.Equal(t, 38000.0, upserted[1].NetSalary)
	assert.Equal(t, 38000.0, resp.Records[0].NetSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Process_InvalidPeriod(t *testing.T) {
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Process(context.Background(), uuid.New().String(), payroll.ProcessPayrollRequest{Month: 13, Year: 2026})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
}

func TestPayrollService_Process_RollsBackEmployeeOnError(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.listPayableEmployeesFn = func(ctx context.Context) ([]payroll.PayableEmployee, error) {
		return []payroll.PayableEmployee{{ID: uuid.New().String(), Name: "Babar Azam", Salary: 45000}}, nil
	}
	deps.repo.upsertFn = func(ctx context.Context, rec *payroll.PayrollRecord) error {
		return errors.New("db error")
	}

	marked := false
	deps.repo.markFinesPaidFn = func(ctx context.Context, eid string) error {
		marked = true
		return nil
	}

	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Process(ctx, uuid.New().String(), payroll.ProcessPayrollRequest{Month: 3, Year: 2026})

	assert.Error(t, err)
	assert.False(t, marked)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Process_QueuesProcessedEvent(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakePayrollRepository{
		listPayableEmployeesFn: func(ctx context.Context) ([]payroll.PayableEmployee, error) {
			return []payroll.PayableEmployee{{ID: uuid.New().String(), Name: "Babar Azam", Salary: 45000}}, nil
		},
	}
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, events.PayrollProcessedTopic, event.Topic)
			var payload events.PayrollProcessedEvent
			err := json.Unmarshal(event.Payload, &payload)
			assert.NoError(t, err)
			assert.Equal(t, 3, payload.Month)
			assert.Equal(t, 2026, payload.Year)
			assert.Equal(t, 1, payload.EmployeeCount)
			assert.Equal(t, 45000.0, payload.TotalNetSalary)
			assert.Equal(t, actorID, payload.ProcessedBy)
			return nil
		},
	}
	svc := payroll.NewServiceWithOutbox(db, repo, outbox)

	expectTx(t, sqlMock, true)
	expectTx(t, sqlMock, true)
	_, err = svc.Process(ctx, actorID, payroll.ProcessPayrollRequest{Month: 3, Year: 2026})

	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GetStatus(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.listStatusesFn = func(ctx context.Context, month, year int) (map[string]string, error) {
		assert.Equal(t, int(time.Now().Month()), month)
		assert.Equal(t, time.Now().Year(), year)
		return map[string]string{employeeID: payroll.StatusPaid}, nil
	}

	resp, err := deps.service.GetStatus(ctx)
	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, resp.Statuses[employeeID])
}

func TestPayrollService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollRecord, error) {
		assert.Equal(t, 3, filter.Month)
		assert.Equal(t, 2026, filter.Year)
		return []payroll.PayrollRecord{
			{ID: uuid.NewString(), EmployeeID: uuid.NewString(), Month: 3, Year: 2026, BaseSalary: 45000, Deductions: 700, NetSalary: 44300, Status: payroll.StatusPaid},
		}, nil
	}

	resp, err := deps.service.GetAll(ctx, payroll.GetPayrollsFilterRequest{Month: 3, Year: 2026})
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 44300.0, resp[0].NetSalary)
}
