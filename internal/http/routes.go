package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "github.com/salmanakber/mayaopps-sub001/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/assignments/validate", h.ValidateAssignment)
	e.POST("/assignments/validate-batch", h.ValidateBatch)
	e.POST("/assignments", h.AssignTask)

	e.GET("/tasks/:id", h.GetTask)

	companies := e.Group("/companies/:companyID")
	companies.GET("/workload", h.Workload)
	companies.GET("/conflicts", h.Conflicts)
	companies.POST("/weeks/clone", h.CloneWeek)
}
