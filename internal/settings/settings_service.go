package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const cacheKey = "settings:current"

// OfficePolicy is the slice of settings the attendance and payroll logic
// reads on every request.
type OfficePolicy struct {
	OfficeStartTime string
	OfficeEndTime   string
	LateFineAmount  float64
	HalfDayHours    float64
}

// Provider is implemented by Service and consumed by attendance/payroll.
type Provider interface {
	Current(ctx context.Context) (OfficePolicy, error)
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Provider
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	return mapToResponse(stored), nil
}

func (s *service) Current(ctx context.Context) (OfficePolicy, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return OfficePolicy{}, err
	}
	return OfficePolicy{
		OfficeStartTime: stored.OfficeStartTime,
		OfficeEndTime:   stored.OfficeEndTime,
		LateFineAmount:  stored.LateFineAmount,
		HalfDayHours:    stored.HalfDayHours,
	}, nil
}

func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	stored, err := s.load(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}

	if req.OfficeStartTime != nil {
		stored.OfficeStartTime = *req.OfficeStartTime
	}
	if req.OfficeEndTime != nil {
		stored.OfficeEndTime = *req.OfficeEndTime
	}
	if req.LateFineAmount != nil {
		stored.LateFineAmount = *req.LateFineAmount
	}
	if req.HalfDayHours != nil {
		stored.HalfDayHours = *req.HalfDayHours
	}
	if req.LeavePolicy != nil {
		stored.LeavePolicy = *req.LeavePolicy
	}
	if req.SalarySettings != nil {
		stored.SalarySettings = *req.SalarySettings
	}

	if err := s.repo.Save(ctx, &stored); err != nil {
		s.logger.Error("save settings failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate settings cache", zap.Error(err))
		}
	}

	s.logger.Info("settings updated")
	return mapToResponse(stored), nil
}

// load reads through the Redis cache; a missing row falls back to defaults
// so a fresh database still yields a usable policy.
func (s *service) load(ctx context.Context) (Settings, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var stored Settings
			if json.Unmarshal([]byte(cached), &stored) == nil {
				return stored, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		stored, err := s.repo.Get(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				def := Defaults()
				return def, nil
			}
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(stored); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 10*time.Minute)
			}
		}

		return *stored, nil
	})

	if err != nil {
		return Settings{}, err
	}

	return v.(Settings), nil
}

func mapToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		OfficeStartTime: s.OfficeStartTime,
		OfficeEndTime:   s.OfficeEndTime,
		LateFineAmount:  s.LateFineAmount,
		HalfDayHours:    s.HalfDayHours,
		LeavePolicy:     s.LeavePolicy,
		SalarySettings:  s.SalarySettings,
	}
}
