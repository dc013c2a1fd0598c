package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListAttendanceQuery) ([]AttendanceResponse, error)
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	policies settings.Provider
	nowFn    func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, policies settings.Provider, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, policies, time.Now, logger...)
}

// NewServiceWithClock lets tests pin the wall clock.
func NewServiceWithClock(
	repo Repository,
	policies settings.Provider,
	nowFn func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:     repo,
		policies: policies,
		nowFn:    nowFn,
		logger:   l,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	now := s.nowFn()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	_, err = s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrDuplicateCheckIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check-in lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	policy, err := s.policies.Current(ctx)
	if err != nil {
		s.logger.Error("check-in load settings failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	// Lexicographic comparison on zero-padded HH:MM strings, matching the
	// stored settings format.
	isLate := clock > policy.OfficeStartTime
	status := StatusPresent
	if isLate {
		status = StatusLate
	}

	rec := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       date,
		CheckIn:    clock,
		Status:     status,
		IsLate:     isLate,
		Method:     req.Method,
		Location:   req.Location,
	}

	// The unique index on (employee_id, date) closes the race between two
	// concurrent check-ins; the mapper turns the violation into a conflict.
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("check-in persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("check-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", date),
		zap.Bool("is_late", isLate),
	)

	return mapToResponse(*rec), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	now := s.nowFn()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoCheckIn
		}
		s.logger.Error("check-out lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	if rec.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	policy, err := s.policies.Current(ctx)
	if err != nil {
		s.logger.Error("check-out load settings failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	hours, err := computeWorkingHours(rec.CheckIn, clock)
	if err != nil {
		return AttendanceResponse{}, err
	}

	// Check-out touches only its own fields; the status decided at check-in
	// stands. "Half Day" is assigned through the manual create/update path.
	rec.CheckOut = &clock
	rec.IsEarlyOut = clock < policy.OfficeEndTime
	rec.WorkingHours = &hours

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("check-out persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("check-out recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", date),
		zap.Float64("working_hours", hours),
		zap.Bool("is_early_out", rec.IsEarlyOut),
	)

	return mapToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context, filter ListAttendanceQuery) ([]AttendanceResponse, error) {
	recs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AttendanceResponse, len(recs))
	for i, r := range recs {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	rec := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
	}

	if req.CheckOut != nil {
		hours, err := computeWorkingHours(req.CheckIn, *req.CheckOut)
		if err != nil {
			return AttendanceResponse{}, err
		}
		rec.WorkingHours = &hours
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("attendance created manually",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)

	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if req.CheckIn != nil {
		rec.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		rec.CheckOut = req.CheckOut
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}

	if rec.CheckOut != nil {
		hours, err := computeWorkingHours(rec.CheckIn, *rec.CheckOut)
		if err != nil {
			return AttendanceResponse{}, err
		}
		rec.WorkingHours = &hours
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("update attendance persist failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("attendance updated", zap.String("attendance_id", id))

	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("attendance deleted", zap.String("attendance_id", id))
	return nil
}

// computeWorkingHours subtracts hour and minute components independently,
// without borrowing minutes across the hour boundary. "09:50" to "10:10"
// yields (10-9) + (10-50)/60 = 0.33. Existing records were produced by this
// arithmetic, so it stays as is.
func computeWorkingHours(checkIn, checkOut string) (float64, error) {
	inH, inM, err := parseClock(checkIn)
	if err != nil {
		return 0, err
	}
	outH, outM, err := parseClock(checkOut)
	if err != nil {
		return 0, err
	}

	hours := float64(outH-inH) + float64(outM-inM)/60
	return math.Round(hours*100) / 100, nil
}

func parseClock(v string) (int, int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, 0, attendanceerrors.ErrInvalidTimeValue
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, attendanceerrors.ErrInvalidTimeValue
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, attendanceerrors.ErrInvalidTimeValue
	}
	return h, m, nil
}

func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func mapToResponse(rec Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           rec.ID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		Date:         rec.Date,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		Status:       rec.Status,
		IsLate:       rec.IsLate,
		IsEarlyOut:   rec.IsEarlyOut,
		WorkingHours: rec.WorkingHours,
		Method:       rec.Method,
		Location:     rec.Location,
	}
}
