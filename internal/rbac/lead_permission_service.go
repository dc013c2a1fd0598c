package rbac

import (
	"context"
	"errors"

	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=lead_permission_service.go -destination=mock/lead_permission_service_mock.go -package=mock
type PermissionService interface {
	GetForLead(ctx context.Context, leadID string) (LeadPermissionResponse, error)
	SetForLead(ctx context.Context, leadID string, req UpdateLeadPermissionRequest) (LeadPermissionResponse, error)
}

type permissionService struct {
	repo   Repository
	logger *zap.Logger
}

func NewPermissionService(repo Repository, logger ...*zap.Logger) PermissionService {
	l := zap.L().Named("rbac.permission_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.permission_service")
	}
	return &permissionService{repo: repo, logger: l}
}

func (s *permissionService) GetForLead(ctx context.Context, leadID string) (LeadPermissionResponse, error) {
	if _, err := uuid.Parse(leadID); err != nil {
		return LeadPermissionResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid lead id", 400)
	}

	p, err := s.repo.FindByLeadID(ctx, leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No stored row means no modules yet, not an error.
			return LeadPermissionResponse{LeadID: leadID, Modules: []string{}}, nil
		}
		return LeadPermissionResponse{}, err
	}

	return LeadPermissionResponse{LeadID: p.LeadID.String(), Modules: p.Modules}, nil
}

func (s *permissionService) SetForLead(ctx context.Context, leadID string, req UpdateLeadPermissionRequest) (LeadPermissionResponse, error) {
	leadUUID, err := uuid.Parse(leadID)
	if err != nil {
		return LeadPermissionResponse{}, apperror.New(apperror.CodeInvalidInput, "invalid lead id", 400)
	}

	p := &LeadPermission{
		ID:      uuid.New(),
		LeadID:  leadUUID,
		Modules: req.Modules,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		s.logger.Error("set lead permission failed", zap.String("lead_id", leadID), zap.Error(err))
		return LeadPermissionResponse{}, err
	}

	s.logger.Info("lead permission updated",
		zap.String("lead_id", leadID),
		zap.Int("modules", len(req.Modules)),
	)

	return LeadPermissionResponse{LeadID: leadID, Modules: p.Modules}, nil
}
