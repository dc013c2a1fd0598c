package leave

import (
	"context"
	"errors"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID, actorRole string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListLeavesQuery) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, actorRole, id string) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID, actorRole string, req CreateLeaveRequest) (LeaveResponse, error) {
	// Non-admins always file for themselves.
	targetID := actorID
	if actorRole == rbac.RoleAdmin && req.EmployeeID != "" {
		targetID = req.EmployeeID
	}

	empID, err := uuid.Parse(targetID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	if req.EndDate < req.StartDate {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: empID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Type:       req.Type,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", targetID),
		zap.String("type", req.Type),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, filter ListLeavesQuery) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.findByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, actorID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	l, err := s.findByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrInvalidTransition
	}

	l.Status = req.Status
	if deciderID, err := uuid.Parse(actorID); err == nil {
		l.DecidedBy = &deciderID
	}

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
		zap.String("decided_by", actorID),
	)

	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actorID, actorRole, id string) (LeaveResponse, error) {
	l, err := s.findByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if actorRole != rbac.RoleAdmin && l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}

	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrInvalidTransition
	}

	l.Status = StatusCancelled

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave cancelled", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	l, err := s.findByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	if req.StartDate != nil {
		l.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		l.EndDate = *req.EndDate
	}
	if req.Type != nil {
		l.Type = *req.Type
	}
	if req.Reason != nil {
		l.Reason = *req.Reason
	}
	if req.Status != nil {
		l.Status = *req.Status
	}

	if l.EndDate < l.StartDate {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave updated", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

// Delete removes a leave request. Admins can delete any; the owning
// employee can delete their own request only while it is still pending.
func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	l, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	if actorRole != rbac.RoleAdmin {
		if l.EmployeeID.String() != actorID {
			return leaveerrors.ErrNotOwner
		}
		if l.Status != StatusPending {
			return leaveerrors.ErrInvalidTransition
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	s.logger.Info("leave deleted", zap.String("leave_id", id))
	return nil
}

func (s *service) findByID(ctx context.Context, id string) (*Leave, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Type:       l.Type,
		Reason:     l.Reason,
		Status:     l.Status,
	}
	if l.DecidedBy != nil {
		resp.DecidedBy = l.DecidedBy.String()
	}
	return resp
}
