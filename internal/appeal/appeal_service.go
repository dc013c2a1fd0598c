package appeal

import (
	"context"
	"errors"

	appealerrors "go-hrms/internal/appeal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=appeal_service.go -destination=mock/appeal_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateAppealRequest) (AppealResponse, error)
	GetAll(ctx context.Context, filter ListAppealsQuery) ([]AppealResponse, error)
	GetByID(ctx context.Context, id string) (AppealResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideAppealRequest) (AppealResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("appeal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("appeal.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAppealRequest) (AppealResponse, error) {
	empID, err := uuid.Parse(actorID)
	if err != nil {
		return AppealResponse{}, appealerrors.ErrInvalidAppealID
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return AppealResponse{}, appealerrors.ErrInvalidAppealID
	}

	a := &Appeal{
		ID:          uuid.New(),
		EmployeeID:  empID,
		SubjectType: req.SubjectType,
		SubjectID:   subjectID,
		Reason:      req.Reason,
		Status:      StatusPending,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create appeal persist failed", zap.Error(err))
		return AppealResponse{}, err
	}

	s.logger.Info("appeal created",
		zap.String("appeal_id", a.ID.String()),
		zap.String("employee_id", actorID),
		zap.String("subject_type", req.SubjectType),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter ListAppealsQuery) ([]AppealResponse, error) {
	appeals, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all appeals failed", zap.Error(err))
		return nil, err
	}

	res := make([]AppealResponse, len(appeals))
	for i, a := range appeals {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AppealResponse, error) {
	a, err := s.findByID(ctx, id)
	if err != nil {
		return AppealResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) Decide(ctx context.Context, actorID, id string, req DecideAppealRequest) (AppealResponse, error) {
	a, err := s.findByID(ctx, id)
	if err != nil {
		return AppealResponse{}, err
	}

	if a.Status != StatusPending {
		return AppealResponse{}, appealerrors.ErrInvalidTransition
	}

	a.Status = req.Status
	if deciderID, err := uuid.Parse(actorID); err == nil {
		a.DecidedBy = &deciderID
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("decide appeal persist failed", zap.String("appeal_id", id), zap.Error(err))
		return AppealResponse{}, err
	}

	s.logger.Info("appeal decided",
		zap.String("appeal_id", id),
		zap.String("status", req.Status),
		zap.String("decided_by", actorID),
	)

	return mapToResponse(*a), nil
}

func (s *service) findByID(ctx context.Context, id string) (*Appeal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appealerrors.ErrInvalidAppealID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appealerrors.ErrAppealNotFound
		}
		return nil, err
	}
	return a, nil
}

func mapToResponse(a Appeal) AppealResponse {
	resp := AppealResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		SubjectType: a.SubjectType,
		SubjectID:   a.SubjectID.String(),
		Reason:      a.Reason,
		Status:      a.Status,
	}
	if a.DecidedBy != nil {
		resp.DecidedBy = a.DecidedBy.String()
	}
	return resp
}
