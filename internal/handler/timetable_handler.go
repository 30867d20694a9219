package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
	"github.com/noah-isme/teacher-portal-api/pkg/response"
)

type timetableService interface {
	Grid(ctx context.Context, teacherID string, req dto.TimetableRequest) (*dto.TimetableResponse, error)
}

type substituteService interface {
	Candidates(ctx context.Context, teacherID, slotID string) (*dto.SubstituteResponse, error)
}

// TimetableHandler serves the weekly grid and substitute lookup.
type TimetableHandler struct {
	timetable   timetableService
	substitutes substituteService
	teachers    teacherResolver
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(timetable timetableService, substitutes substituteService, teachers teacherResolver) *TimetableHandler {
	return &TimetableHandler{timetable: timetable, substitutes: substitutes, teachers: teachers}
}

// Grid godoc
// @Summary Weekly timetable grid for the teacher
// @Tags Timetable
// @Produce json
// @Security BearerAuth
// @Param academicYear query int false "Academic year start, e.g. 2025"
// @Param semester query int false "Semester 1-3"
// @Param weekStart query string false "Any date in the wanted week"
// @Param startDate query string false "Custom range start, needs endDate"
// @Param endDate query string false "Custom range end, needs startDate"
// @Success 200 {object} response.Envelope
// @Router /timetable [get]
func (h *TimetableHandler) Grid(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.TimetableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	grid, err := h.timetable.Grid(c.Request.Context(), teacher.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, nil)
}

// Substitutes godoc
// @Summary Cover candidates for one timetable slot
// @Tags Timetable
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Envelope
// @Router /slots/{id}/substitutes [get]
func (h *TimetableHandler) Substitutes(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.substitutes.Candidates(c.Request.Context(), teacher.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
