package usecases

import (
	"context"

	"codecampus/internal/application/user/dto"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// GetRoleQuery represents the request for a user's role
type GetRoleQuery struct {
	SubjectID string
}

// GetRoleUseCase reads the user's role. A subject with no row yet reads as
// a student, since accounts are created lazily on first sync.
type GetRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewGetRoleUseCase creates a new GetRoleUseCase
func NewGetRoleUseCase(userRepo user.Repository, logger logger.Interface) *GetRoleUseCase {
	return &GetRoleUseCase{userRepo: userRepo, logger: logger}
}

// Execute reads the role.
func (uc *GetRoleUseCase) Execute(ctx context.Context, query GetRoleQuery) (*dto.RoleDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return &dto.RoleDTO{Role: user.RoleStudent.String()}, nil
		}
		return nil, err
	}
	return &dto.RoleDTO{Role: u.Role().String()}, nil
}
