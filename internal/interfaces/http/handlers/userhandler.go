package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codecampus/internal/application/user/usecases"
	"codecampus/internal/interfaces/http/middleware"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
	"codecampus/internal/shared/utils"
)

type syncUserRequest struct {
	Email        string `json:"email" binding:"required,email"`
	FullName     string `json:"full_name" binding:"required,max=255"`
	AvatarURL    string `json:"avatar_url" binding:"omitempty,url"`
	Branch       string `json:"branch" binding:"omitempty,max=128"`
	AcademicYear string `json:"academic_year" binding:"omitempty,max=32"`
	Semester     int    `json:"semester" binding:"omitempty,min=1,max=12"`
}

type updateProfileRequest struct {
	EnrollmentNumber string `json:"enrollment_number" binding:"omitempty,max=64"`
	Branch           string `json:"branch" binding:"omitempty,max=128"`
	Semester         int    `json:"semester" binding:"omitempty,min=1,max=12"`
}

type setVisibilityRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

// UserHandler handles user identity, profile and visibility requests.
type UserHandler struct {
	syncUserUC      *usecases.SyncUserUseCase
	getProfileUC    *usecases.GetProfileUseCase
	updateProfileUC *usecases.UpdateProfileUseCase
	setVisibilityUC *usecases.SetVisibilityUseCase
	getVisibilityUC *usecases.GetVisibilityUseCase
	getRoleUC       *usecases.GetRoleUseCase
	logger          logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	syncUserUC *usecases.SyncUserUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	setVisibilityUC *usecases.SetVisibilityUseCase,
	getVisibilityUC *usecases.GetVisibilityUseCase,
	getRoleUC *usecases.GetRoleUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		syncUserUC:      syncUserUC,
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		setVisibilityUC: setVisibilityUC,
		getVisibilityUC: getVisibilityUC,
		getRoleUC:       getRoleUC,
		logger:          logger,
	}
}

// Sync creates or refreshes the local user record from provider identity.
// POST /api/v1/users/sync
func (h *UserHandler) Sync(c *gin.Context) {
	var req syncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.syncUserUC.Execute(c.Request.Context(), usecases.SyncUserCommand{
		SubjectID:    middleware.SubjectID(c),
		Email:        req.Email,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Branch:       req.Branch,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User synced", result)
}

// GetProfile returns the authenticated user's profile.
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile updates the authenticated user's academic profile fields.
// PUT /api/v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		SubjectID:        middleware.SubjectID(c),
		EnrollmentNumber: req.EnrollmentNumber,
		Branch:           req.Branch,
		Semester:         req.Semester,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", result)
}

// SetVisibility toggles the authenticated user's leaderboard presence.
// PUT /api/v1/users/me/visibility
func (h *UserHandler) SetVisibility(c *gin.Context) {
	var req setVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.setVisibilityUC.Execute(c.Request.Context(), usecases.SetVisibilityCommand{
		SubjectID: middleware.SubjectID(c),
		Hidden:    *req.Hidden,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visibility updated", result)
}

// GetVisibility reads the authenticated user's leaderboard presence flag.
// GET /api/v1/users/me/visibility
func (h *UserHandler) GetVisibility(c *gin.Context) {
	result, err := h.getVisibilityUC.Execute(c.Request.Context(), usecases.GetVisibilityQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRole reads the authenticated user's role.
// GET /api/v1/users/me/role
func (h *UserHandler) GetRole(c *gin.Context) {
	result, err := h.getRoleUC.Execute(c.Request.Context(), usecases.GetRoleQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
