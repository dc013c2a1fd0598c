package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/settings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, rec *Attendance) error
	findByIDFn              func(ctx context.Context, id string) (*Attendance, error)
	findByEmployeeAndDateFn func(ctx context.Context, employeeID, date string) (*Attendance, error)
	findAllFn               func(ctx context.Context, filter ListAttendanceQuery) ([]Attendance, error)
	updateFn                func(ctx context.Context, rec *Attendance) error
	deleteFn                func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, rec *Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, rec)
	}
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Attendance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindAll(ctx context.Context, filter ListAttendanceQuery) ([]Attendance, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeRepo) Update(ctx context.Context, rec *Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, rec)
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakePolicies struct {
	policy settings.OfficePolicy
	err    error
}

func (f *fakePolicies) Current(ctx context.Context) (settings.OfficePolicy, error) {
	return f.policy, f.err
}

func defaultPolicies() *fakePolicies {
	return &fakePolicies{policy: settings.OfficePolicy{
		OfficeStartTime: "09:00",
		OfficeEndTime:   "18:00",
		LateFineAmount:  100,
		HalfDayHours:    4,
	}}
}

func TestService_CheckInAndCheckOut(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	var saved *Attendance
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, rec *Attendance) error { saved = rec; return nil }
	repo.updateFn = func(ctx context.Context, rec *Attendance) error { saved = rec; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID, date string) (*Attendance, error) {
		if saved == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return saved, nil
	}

	svc := NewServiceWithClock(repo, defaultPolicies(), func() time.Time { return now })

	inResp, err := svc.CheckIn(ctx, employeeID, CheckInRequest{Method: "web"})
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-02", inResp.Date)
	assert.Equal(t, "09:00", inResp.CheckIn)
	assert.Equal(t, StatusPresent, inResp.Status)
	assert.False(t, inResp.IsLate)

	now = time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	outResp, err := svc.CheckOut(ctx, employeeID)
	assert.NoError(t, err)
	if assert.NotNil(t, outResp.CheckOut) {
		assert.Equal(t, "17:30", *outResp.CheckOut)
	}
	if assert.NotNil(t, outResp.WorkingHours) {
		assert.Equal(t, 8.5, *outResp.WorkingHours)
	}
	assert.True(t, outResp.IsEarlyOut)
	assert.Equal(t, StatusPresent, outResp.Status)
}

func TestService_CheckIn_Late(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	now := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)

	repo := &fakeRepo{}
	svc := NewServiceWithClock(repo, defaultPolicies(), func() time.Time { return now })

	resp, err := svc.CheckIn(ctx, employeeID, CheckInRequest{})
	assert.NoError(t, err)
	assert.True(t, resp.IsLate)
	assert.Equal(t, StatusLate, resp.Status)
}

func TestService_CheckIn_Duplicate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	now := time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC)

	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID, date string) (*Attendance, error) {
			return &Attendance{ID: uuid.New()}, nil
		},
	}
	svc := NewServiceWithClock(repo, defaultPolicies(), func() time.Time { return now })

	_, err := svc.CheckIn(ctx, employeeID, CheckInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateCheckIn)
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	repo := &fakeRepo{}
	svc := NewServiceWithClock(repo, defaultPolicies(), time.Now)

	_, err := svc.CheckOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendanceerrors.ErrNoCheckIn)
}

func TestService_CheckOut_Twice(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	out := "17:00"

	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID, date string) (*Attendance, error) {
			return &Attendance{ID: uuid.New(), CheckIn: "09:00", CheckOut: &out}, nil
		},
	}
	svc := NewServiceWithClock(repo, defaultPolicies(), time.Now)

	_, err := svc.CheckOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
}

func TestService_CheckOut_KeepsCheckInStatus(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	now := time.Date(2026, 3, 2, 12, 10, 0, 0, time.UTC)

	var saved Attendance
	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, employeeID, date string) (*Attendance, error) {
			return &Attendance{
				ID:         uuid.New(),
				EmployeeID: uuid.MustParse(employeeID),
				Date:       "2026-03-02",
				CheckIn:    "09:05",
				Status:     StatusLate,
				IsLate:     true,
			}, nil
		},
		updateFn: func(ctx context.Context, rec *Attendance) error { saved = *rec; return nil },
	}
	svc := NewServiceWithClock(repo, defaultPolicies(), func() time.Time { return now })

	resp, err := svc.CheckOut(ctx, employeeID)
	assert.NoError(t, err)
	if assert.NotNil(t, resp.WorkingHours) {
		assert.Equal(t, 3.08, *resp.WorkingHours)
	}
	assert.True(t, resp.IsEarlyOut)
	assert.Equal(t, StatusLate, resp.Status)
	assert.Equal(t, StatusLate, saved.Status)
}

func TestService_Update_AssignsHalfDay(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	out := "13:00"
	status := StatusHalfDay

	var saved Attendance
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, recID string) (*Attendance, error) {
			return &Attendance{ID: id, EmployeeID: uuid.New(), CheckIn: "09:00", Status: StatusPresent}, nil
		},
		updateFn: func(ctx context.Context, rec *Attendance) error { saved = *rec; return nil },
	}
	svc := NewServiceWithClock(repo, defaultPolicies(), time.Now)

	resp, err := svc.Update(ctx, id.String(), UpdateAttendanceRequest{CheckOut: &out, Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, StatusHalfDay, resp.Status)
	assert.Equal(t, StatusHalfDay, saved.Status)
	if assert.NotNil(t, resp.WorkingHours) {
		assert.Equal(t, 4.0, *resp.WorkingHours)
	}
}

func TestService_CheckIn_InvalidEmployeeID(t *testing.T) {
	svc := NewServiceWithClock(&fakeRepo{}, defaultPolicies(), time.Now)

	_, err := svc.CheckIn(context.Background(), "not-a-uuid", CheckInRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidAttendanceID)
}

func TestService_Update_RecomputesHours(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	out := "18:00"

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, recID string) (*Attendance, error) {
			return &Attendance{ID: id, EmployeeID: uuid.New(), CheckIn: "09:00", Status: StatusPresent}, nil
		},
	}
	svc := NewServiceWithClock(repo, defaultPolicies(), time.Now)

	resp, err := svc.Update(ctx, id.String(), UpdateAttendanceRequest{CheckOut: &out})
	assert.NoError(t, err)
	if assert.NotNil(t, resp.WorkingHours) {
		assert.Equal(t, 9.0, *resp.WorkingHours)
	}
}

func TestComputeWorkingHours(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"full day", "09:00", "17:30", 8.5},
		{"minutes do not borrow", "09:50", "10:10", 0.33},
		{"exact hours", "08:00", "16:00", 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := computeWorkingHours(tc.checkIn, tc.checkOut)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := computeWorkingHours("0900", "17:00")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimeValue)
}
