package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codecampus/internal/application/task/usecases"
	"codecampus/internal/interfaces/http/middleware"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
	"codecampus/internal/shared/utils"
)

type createTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=4000"`
	Link        string `json:"link" binding:"omitempty,url,max=512"`
	Branch      string `json:"branch" binding:"required,max=64"`
	Semester    int    `json:"semester" binding:"required,min=1,max=12"`
}

type submitTaskRequest struct {
	Link string `json:"link" binding:"required,url,max=512"`
}

// TaskHandler handles task publication, listing and submission requests.
type TaskHandler struct {
	createUC          *usecases.CreateTaskUseCase
	listStudentUC     *usecases.ListStudentTasksUseCase
	listTeacherUC     *usecases.ListTeacherTasksUseCase
	submitUC          *usecases.SubmitTaskUseCase
	listSubmissionsUC *usecases.ListSubmissionsUseCase
	logger            logger.Interface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(
	createUC *usecases.CreateTaskUseCase,
	listStudentUC *usecases.ListStudentTasksUseCase,
	listTeacherUC *usecases.ListTeacherTasksUseCase,
	submitUC *usecases.SubmitTaskUseCase,
	listSubmissionsUC *usecases.ListSubmissionsUseCase,
	logger logger.Interface,
) *TaskHandler {
	return &TaskHandler{
		createUC:          createUC,
		listStudentUC:     listStudentUC,
		listTeacherUC:     listTeacherUC,
		submitUC:          submitUC,
		listSubmissionsUC: listSubmissionsUC,
		logger:            logger,
	}
}

// Create publishes a new task.
// POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		SubjectID:   middleware.SubjectID(c),
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Branch:      req.Branch,
		Semester:    req.Semester,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task published")
}

// ListForStudent returns the tasks currently visible to the student.
// GET /api/v1/tasks
func (h *TaskHandler) ListForStudent(c *gin.Context) {
	result, err := h.listStudentUC.Execute(c.Request.Context(), usecases.ListStudentTasksQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListForTeacher returns every task the teacher has published.
// GET /api/v1/tasks/published
func (h *TaskHandler) ListForTeacher(c *gin.Context) {
	result, err := h.listTeacherUC.Execute(c.Request.Context(), usecases.ListTeacherTasksQuery{
		SubjectID: middleware.SubjectID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Submit stores a student's solution link for a task.
// POST /api/v1/tasks/:id/submissions
func (h *TaskHandler) Submit(c *gin.Context) {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req submitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitTaskCommand{
		SubjectID: middleware.SubjectID(c),
		TaskID:    taskID,
		Link:      req.Link,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Submission stored", result)
}

// ListSubmissions returns a task's submissions for its teacher.
// GET /api/v1/tasks/:id/submissions
func (h *TaskHandler) ListSubmissions(c *gin.Context) {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSubmissionsUC.Execute(c.Request.Context(), usecases.ListSubmissionsQuery{
		SubjectID: middleware.SubjectID(c),
		TaskID:    taskID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
