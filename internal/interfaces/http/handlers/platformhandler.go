package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codecampus/internal/application/platform/usecases"
	"codecampus/internal/interfaces/http/middleware"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
	"codecampus/internal/shared/utils"
)

// connectPlatformRequest is the body for linking a platform handle. The
// platform tag is a custom validator registered at router setup.
type connectPlatformRequest struct {
	Platform string `json:"platform" binding:"required,platform"`
	Handle   string `json:"handle" binding:"required,max=128"`
}

// updateHandlesRequest is the body for a bulk handle update.
type updateHandlesRequest struct {
	Handles map[string]string `json:"handles" binding:"required,min=1"`
}

// PlatformHandler handles platform connection, sync, leaderboard and
// dashboard requests.
type PlatformHandler struct {
	connectUC       *usecases.ConnectPlatformUseCase
	syncUC          *usecases.SyncStatsUseCase
	updateHandlesUC *usecases.UpdateHandlesUseCase
	listUC          *usecases.ListPlatformsUseCase
	leaderboardUC   *usecases.GetLeaderboardUseCase
	dashboardUC     *usecases.GetDashboardStatsUseCase
	logger          logger.Interface
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(
	connectUC *usecases.ConnectPlatformUseCase,
	syncUC *usecases.SyncStatsUseCase,
	updateHandlesUC *usecases.UpdateHandlesUseCase,
	listUC *usecases.ListPlatformsUseCase,
	leaderboardUC *usecases.GetLeaderboardUseCase,
	dashboardUC *usecases.GetDashboardStatsUseCase,
	logger logger.Interface,
) *PlatformHandler {
	return &PlatformHandler{
		connectUC:       connectUC,
		syncUC:          syncUC,
		updateHandlesUC: updateHandlesUC,
		listUC:          listUC,
		leaderboardUC:   leaderboardUC,
		dashboardUC:     dashboardUC,
		logger:          logger,
	}
}

// Connect links a platform handle to the authenticated user.
// POST /api/v1/platforms/connect
func (h *PlatformHandler) Connect(c *gin.Context) {
	var req connectPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.connectUC.Execute(c.Request.Context(), usecases.ConnectPlatformCommand{
		SubjectID: middleware.SubjectID(c),
		Platform:  req.Platform,
		Handle:    req.Handle,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Platform connected successfully")
}

// Sync refreshes all connected platforms for the authenticated user.
// POST /api/v1/platforms/sync
func (h *PlatformHandler) Sync(c *gin.Context) {
	result, err := h.syncUC.Execute(c.Request.Context(), usecases.SyncStatsCommand{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Platforms synced", result)
}

// UpdateHandles changes handles for several platforms at once.
// PUT /api/v1/platforms/handles
func (h *PlatformHandler) UpdateHandles(c *gin.Context) {
	var req updateHandlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateHandlesUC.Execute(c.Request.Context(), usecases.UpdateHandlesCommand{
		SubjectID: middleware.SubjectID(c),
		Handles:   req.Handles,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Handles updated", result)
}

// List returns the authenticated user's connected platforms.
// GET /api/v1/platforms
func (h *PlatformHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPlatformsQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Leaderboard returns the weighted leaderboard. Public, no identity needed.
// GET /api/v1/leaderboard
func (h *PlatformHandler) Leaderboard(c *gin.Context) {
	result, err := h.leaderboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Dashboard returns the authenticated user's stats overview.
// GET /api/v1/dashboard
func (h *PlatformHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.GetDashboardStatsQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
