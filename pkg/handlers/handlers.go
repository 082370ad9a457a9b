package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/calendar"
	"github.com/jakechorley/shift-roster/pkg/core/services"
	"github.com/jakechorley/shift-roster/pkg/db"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	Store       services.DraftWeekStore
	Employees   db.EmployeeSource
	Calendar    calendar.Calendar
	Templates   allocator.ShiftTemplates
	RoshChodesh bool
	Logger      *zap.Logger
}

// Router builds the gin engine with all routes registered
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/weeks/:start/staffing", h.ViewStaffing)
		api.POST("/weeks/:start/draft", h.DraftWeek)
	}

	return r
}

// ViewStaffing returns the required headcount for each date of a week.
// The optional end query parameter overrides the default seven-day range.
func (h *Handler) ViewStaffing(c *gin.Context) {
	start, end, ok := h.parseWeek(c)
	if !ok {
		return
	}

	report, err := services.ViewStaffing(c.Request.Context(), h.Store, h.Calendar, h.RoshChodesh, h.Logger, start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStaffingResponse(report))
}

// DraftWeek drafts and saves a week's roster. dryRun=true skips the save.
func (h *Handler) DraftWeek(c *gin.Context) {
	start, end, ok := h.parseWeek(c)
	if !ok {
		return
	}

	dryRun := false
	if v := c.Query("dryRun"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dryRun must be true or false"})
			return
		}
		dryRun = parsed
	}

	result, err := services.DraftWeek(c.Request.Context(), h.Store, h.Employees, h.Calendar, h.Templates, h.Logger, start, end, dryRun)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDraftResponse(result))
}

func (h *Handler) parseWeek(c *gin.Context) (time.Time, time.Time, bool) {
	start, end, err := services.ParseWeek(c.Param("start"), c.Query("end"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var loadErr *services.DataLoadError
	if errors.As(err, &loadErr) {
		h.Logger.Error("Failed to load roster data", zap.String("collection", loadErr.Collection), zap.Error(loadErr.Err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "collection": loadErr.Collection})
		return
	}

	h.Logger.Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		h.Logger.Info("Handled request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(started)))
	}
}
