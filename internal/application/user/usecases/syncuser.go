package usecases

import (
	"context"

	"codecampus/internal/application/user/dto"
	"codecampus/internal/domain/user"
	"codecampus/internal/shared/biztime"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// SyncUserCommand carries the identity attributes asserted by the auth
// provider on each login.
type SyncUserCommand struct {
	SubjectID    string
	Email        string
	FullName     string
	AvatarURL    string
	Branch       string
	AcademicYear string
	Semester     int
}

// SyncUserUseCase upserts the local user record from provider identity. The
// first call for a subject creates the row; later calls refresh the
// identity attributes without touching profile fields the user edited
// locally.
type SyncUserUseCase struct {
	userRepo   user.Repository
	dailyLimit int
	logger     logger.Interface
}

// NewSyncUserUseCase creates a new SyncUserUseCase
func NewSyncUserUseCase(userRepo user.Repository, dailyLimit int, logger logger.Interface) *SyncUserUseCase {
	return &SyncUserUseCase{
		userRepo:   userRepo,
		dailyLimit: dailyLimit,
		logger:     logger,
	}
}

// Execute creates or refreshes the user record.
func (uc *SyncUserUseCase) Execute(ctx context.Context, cmd SyncUserCommand) (*dto.UserDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if cmd.Email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	existing, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			return nil, err
		}
		return uc.createUser(ctx, cmd)
	}

	return dto.NewUserDTO(existing, existing.RemainingSyncs(biztime.Today(), uc.dailyLimit)), nil
}

func (uc *SyncUserUseCase) createUser(ctx context.Context, cmd SyncUserCommand) (*dto.UserDTO, error) {
	u, err := user.NewUser(
		cmd.SubjectID,
		cmd.Email,
		cmd.FullName,
		cmd.AvatarURL,
		cmd.Branch,
		cmd.AcademicYear,
		cmd.Semester,
		"",
	)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid user data", err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		// A concurrent first login can win the insert race; the stored row
		// is the same identity, so read it back instead of failing.
		if apperrors.IsConflictError(err) {
			existing, getErr := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
			if getErr == nil {
				return dto.NewUserDTO(existing, existing.RemainingSyncs(biztime.Today(), uc.dailyLimit)), nil
			}
		}
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "subject_id", u.SubjectID())
	return dto.NewUserDTO(u, uc.dailyLimit), nil
}
