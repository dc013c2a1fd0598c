package settings_test

import (
	"context"
	"testing"

	"go-hrms/internal/settings"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSettingsRepo struct {
	getFn  func(ctx context.Context) (*settings.Settings, error)
	saveFn func(ctx context.Context, s *settings.Settings) error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	if f.getFn != nil {
		return f.getFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *settings.Settings) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, s)
	}
	return nil
}

func TestSettingsService_Get_FallsBackToDefaults(t *testing.T) {
	svc := settings.NewService(&fakeSettingsRepo{}, nil)

	resp, err := svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "09:00", resp.OfficeStartTime)
	assert.Equal(t, "18:00", resp.OfficeEndTime)
	assert.Equal(t, 100.0, resp.LateFineAmount)
	assert.Equal(t, 4.0, resp.HalfDayHours)
	assert.Equal(t, 12, resp.LeavePolicy["Casual"])
}

func TestSettingsService_Current(t *testing.T) {
	stored := settings.Defaults()
	stored.OfficeStartTime = "08:30"
	stored.HalfDayHours = 5

	repo := &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*settings.Settings, error) { return &stored, nil },
	}
	svc := settings.NewService(repo, nil)

	policy, err := svc.Current(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "08:30", policy.OfficeStartTime)
	assert.Equal(t, 5.0, policy.HalfDayHours)
}

func TestSettingsService_Update_PartialPatch(t *testing.T) {
	stored := settings.Defaults()

	var saved *settings.Settings
	repo := &fakeSettingsRepo{
		getFn:  func(ctx context.Context) (*settings.Settings, error) { return &stored, nil },
		saveFn: func(ctx context.Context, s *settings.Settings) error { saved = s; return nil },
	}
	svc := settings.NewService(repo, nil)

	start := "08:00"
	resp, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{OfficeStartTime: &start})

	assert.NoError(t, err)
	assert.Equal(t, "08:00", resp.OfficeStartTime)
	// Untouched fields keep their stored values.
	assert.Equal(t, "18:00", resp.OfficeEndTime)
	assert.Equal(t, 100.0, resp.LateFineAmount)
	if assert.NotNil(t, saved) {
		assert.Equal(t, settings.SingletonID, saved.ID)
	}
}
