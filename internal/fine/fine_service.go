package fine

import (
	"context"
	"errors"
	"time"

	fineerrors "go-hrms/internal/fine/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=fine_service.go -destination=mock/fine_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateFineRequest) (FineResponse, error)
	GetAll(ctx context.Context, filter ListFinesQuery) ([]FineResponse, error)
	GetByID(ctx context.Context, id string) (FineResponse, error)
	Update(ctx context.Context, id string, req UpdateFineRequest) (FineResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("fine.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fine.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateFineRequest) (FineResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return FineResponse{}, fineerrors.ErrInvalidEmployeeID
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	f := &Fine{
		ID:         uuid.New(),
		EmployeeID: empID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Date:       date,
		Status:     StatusUnpaid,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("create fine persist failed", zap.Error(err))
		return FineResponse{}, err
	}

	s.logger.Info("fine created",
		zap.String("fine_id", f.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("amount", req.Amount),
	)

	return mapToResponse(*f), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFinesQuery) ([]FineResponse, error) {
	fines, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all fines failed", zap.Error(err))
		return nil, err
	}

	res := make([]FineResponse, len(fines))
	for i, f := range fines {
		res[i] = mapToResponse(f)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (FineResponse, error) {
	f, err := s.findByID(ctx, id)
	if err != nil {
		return FineResponse{}, err
	}
	return mapToResponse(*f), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateFineRequest) (FineResponse, error) {
	f, err := s.findByID(ctx, id)
	if err != nil {
		return FineResponse{}, err
	}

	if req.Amount != nil {
		f.Amount = *req.Amount
	}
	if req.Reason != nil {
		f.Reason = *req.Reason
	}
	if req.Date != nil {
		f.Date = *req.Date
	}
	if req.Status != nil {
		f.Status = *req.Status
	}

	if err := s.repo.Update(ctx, f); err != nil {
		s.logger.Error("update fine persist failed", zap.String("fine_id", id), zap.Error(err))
		return FineResponse{}, err
	}

	s.logger.Info("fine updated", zap.String("fine_id", id))

	return mapToResponse(*f), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fineerrors.ErrInvalidFineID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fineerrors.ErrFineNotFound
		}
		return err
	}

	s.logger.Info("fine deleted", zap.String("fine_id", id))
	return nil
}

func (s *service) findByID(ctx context.Context, id string) (*Fine, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fineerrors.ErrInvalidFineID
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fineerrors.ErrFineNotFound
		}
		return nil, err
	}
	return f, nil
}

func mapToResponse(f Fine) FineResponse {
	return FineResponse{
		ID:         f.ID.String(),
		EmployeeID: f.EmployeeID.String(),
		Amount:     f.Amount,
		Reason:     f.Reason,
		Date:       f.Date,
		Status:     f.Status,
	}
}
