package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
	apperrors "github.com/salmanakber/mayaopps-sub001/internal/errors"
	"github.com/salmanakber/mayaopps-sub001/internal/http/validators"
	"github.com/salmanakber/mayaopps-sub001/internal/services"
)

type Handler struct {
	taskService       *services.TaskService
	assignmentService *services.AssignmentService
	poolService       *services.PoolService
	workloadService   *services.WorkloadService
	conflictService   *services.ConflictService
	cloneService      *services.CloneService
	now               func() time.Time
}

func NewHandler(
	taskService *services.TaskService,
	assignmentService *services.AssignmentService,
	poolService *services.PoolService,
	workloadService *services.WorkloadService,
	conflictService *services.ConflictService,
	cloneService *services.CloneService,
) *Handler {
	return &Handler{
		taskService:       taskService,
		assignmentService: assignmentService,
		poolService:       poolService,
		workloadService:   workloadService,
		conflictService:   conflictService,
		cloneService:      cloneService,
		now:               time.Now,
	}
}

func (h *Handler) ValidateAssignment(c echo.Context) error {
	var req dto.ValidateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	in, err := validators.ValidateAssignmentRequest(&req)
	if err != nil {
		return err
	}

	warnings, err := h.assignmentService.ValidateAssignment(c.Request().Context(), in)
	if err != nil {
		return httpError(err, "failed to validate assignment")
	}

	return c.JSON(http.StatusOK, dto.ValidationResponse{Warnings: warnings})
}

func (h *Handler) ValidateBatch(c echo.Context) error {
	var req dto.ValidateBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	inputs, err := validators.ValidateBatchRequest(&req)
	if err != nil {
		return err
	}

	results, err := h.poolService.ValidateBatch(c.Request().Context(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrPoolClosed) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "validation pool is shutting down")
		}
		return httpError(err, "failed to validate batch")
	}

	return c.JSON(http.StatusOK, dto.BatchValidationResponse{Results: results})
}

func (h *Handler) AssignTask(c echo.Context) error {
	var req dto.AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	in, err := validators.ValidateAssignTaskRequest(&req)
	if err != nil {
		return err
	}

	result, err := h.assignmentService.AssignTask(c.Request().Context(), in)
	if err != nil {
		return httpError(err, "failed to assign task")
	}

	return c.JSON(http.StatusOK, dto.AssignTaskResponse{
		Task:       result.Task,
		Warnings:   result.Warnings,
		Overridden: result.Overridden,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "failed to load task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) Workload(c echo.Context) error {
	var q dto.WindowQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	from, to, err := validators.ValidateWindowQuery(&q)
	if err != nil {
		return err
	}

	resp, err := h.workloadService.ComputeWorkload(c.Request().Context(), c.Param("companyID"), from, to)
	if err != nil {
		return httpError(err, "failed to compute workload")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Conflicts(c echo.Context) error {
	var q dto.WindowQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	from, to, err := validators.ValidateConflictWindow(&q, h.now())
	if err != nil {
		return err
	}

	conflicts, err := h.conflictService.DetectConflicts(c.Request().Context(), c.Param("companyID"), from, to)
	if err != nil {
		return httpError(err, "failed to detect conflicts")
	}

	return c.JSON(http.StatusOK, dto.ConflictsResponse{
		Count:     len(conflicts),
		Conflicts: conflicts,
	})
}

func (h *Handler) CloneWeek(c echo.Context) error {
	var req dto.CloneWeekRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	start, end, err := validators.ValidateCloneWeekRequest(&req)
	if err != nil {
		return err
	}

	resp, err := h.cloneService.CloneWeek(c.Request().Context(), c.Param("companyID"), start, end)
	if err != nil {
		return httpError(err, "failed to clone week")
	}

	return c.JSON(http.StatusCreated, resp)
}

// httpError maps the error taxonomy onto status codes. Anything outside it is
// logged and reported as a generic 500.
func httpError(err error, fallback string) error {
	if apperrors.IsHard(err) {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}
	log.Printf("%s: %v", fallback, err)
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
