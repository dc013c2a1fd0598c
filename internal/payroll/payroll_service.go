package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Process(ctx context.Context, actorID string, req ProcessPayrollRequest) (ProcessPayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetStatus(ctx context.Context) (PayrollStatusResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Process aggregates one (month, year) run: for every EMPLOYEE-role record,
// unpaid fines are summed into deductions, a payroll row is upserted on the
// composite key, and the consumed fines flip to Paid. Each employee runs in
// its own transaction, so compute, upsert and fine mutation land together or
// not at all. A re-run finds no unpaid fines and upserts with deductions 0.
func (s *service) Process(ctx context.Context, actorID string, req ProcessPayrollRequest) (ProcessPayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		return ProcessPayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	s.logger.Info("payroll run started",
		zap.String("request_id", rid),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.String("processed_by", actorID),
	)

	empls, err := s.repo.ListPayableEmployees(ctx)
	if err != nil {
		s.logger.Error("payroll list employees failed", zap.Error(err))
		return ProcessPayrollResponse{}, err
	}

	prefix := fmt.Sprintf("%04d-%02d", req.Year, req.Month)
	records := make([]PayrollResponse, 0, len(empls))
	var totalNet float64

	for _, empl := range empls {
		rec, err := s.processEmployee(ctx, empl, req.Month, req.Year, prefix)
		if err != nil {
			s.logger.Error("payroll employee failed",
				zap.String("request_id", rid),
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			return ProcessPayrollResponse{}, err
		}
		totalNet += rec.NetSalary
		records = append(records, mapToResponse(rec))
	}

	if err := s.emitProcessedEvent(ctx, rid, actorID, req, len(records), totalNet); err != nil {
		// The run itself succeeded; the event is telemetry, not state.
		s.logger.Error("payroll processed event failed", zap.String("request_id", rid), zap.Error(err))
	}

	s.logger.Info("payroll run finished",
		zap.String("request_id", rid),
		zap.Int("employees", len(records)),
		zap.Float64("total_net", totalNet),
	)

	return ProcessPayrollResponse{
		Month:     req.Month,
		Year:      req.Year,
		Processed: len(records),
		Records:   records,
	}, nil
}

func (s *service) processEmployee(
	ctx context.Context,
	empl PayableEmployee,
	month, year int,
	monthPrefix string,
) (PayrollRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRecord{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	deductions, err := qtx.SumUnpaidFines(ctx, empl.ID)
	if err != nil {
		return PayrollRecord{}, err
	}

	// Approved leaves are read but do not feed the deduction formula yet.
	if _, err := qtx.CountApprovedLeaves(ctx, empl.ID, monthPrefix); err != nil {
		return PayrollRecord{}, err
	}

	rec := PayrollRecord{
		ID:         uuid.NewString(),
		EmployeeID: empl.ID,
		Month:      month,
		Year:       year,
		BaseSalary: empl.Salary,
		Deductions: deductions,
		NetSalary:  empl.Salary - deductions,
		Status:     StatusPaid,
	}

	if err := qtx.Upsert(ctx, &rec); err != nil {
		return PayrollRecord{}, err
	}

	if err := qtx.MarkFinesPaid(ctx, empl.ID); err != nil {
		return PayrollRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollRecord{}, err
	}

	return rec, nil
}

func (s *service) emitProcessedEvent(
	ctx context.Context,
	rid, actorID string,
	req ProcessPayrollRequest,
	count int,
	totalNet float64,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollProcessedEvent{
		EventType:      "payroll_processed",
		RequestID:      rid,
		Month:          req.Month,
		Year:           req.Year,
		EmployeeCount:  count,
		TotalNetSalary: totalNet,
		ProcessedBy:    actorID,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		EventType:     event.EventType,
		Topic:         events.PayrollProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error) {
	recs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all payrolls failed", zap.Error(err))
		return nil, err
	}

	res := make([]PayrollResponse, len(recs))
	for i, rec := range recs {
		res[i] = mapToResponse(rec)
	}
	return res, nil
}

// GetStatus reports per-employee payroll status for the current period.
// Employees missing from the map have not been processed yet.
func (s *service) GetStatus(ctx context.Context) (PayrollStatusResponse, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	statuses, err := s.repo.ListStatuses(ctx, month, year)
	if err != nil {
		s.logger.Error("get payroll status failed", zap.Error(err))
		return PayrollStatusResponse{}, err
	}

	return PayrollStatusResponse{
		Month:    month,
		Year:     year,
		Statuses: statuses,
	}, nil
}

func mapToResponse(rec PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Month:      rec.Month,
		Year:       rec.Year,
		BaseSalary: rec.BaseSalary,
		Deductions: rec.Deductions,
		NetSalary:  rec.NetSalary,
		Status:     rec.Status,
	}
}
