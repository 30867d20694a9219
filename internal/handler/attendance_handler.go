package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
	"github.com/noah-isme/teacher-portal-api/pkg/response"
)

type attendanceService interface {
	List(ctx context.Context, teacherID, assignmentID string, page int) ([]dto.AttendanceSessionItem, *models.Pagination, error)
	Create(ctx context.Context, teacherID, assignmentID string, req dto.CreateAttendanceRequest) (*dto.CreateAttendanceResponse, error)
	Get(ctx context.Context, teacherID, sessionID string) (*dto.AttendanceSessionItem, error)
	Sheet(ctx context.Context, teacherID, sessionID string) (*dto.AttendanceSheetResponse, error)
	Confirm(ctx context.Context, teacherID, sessionID string, req dto.ConfirmAttendanceRequest) (*dto.ConfirmAttendanceResponse, error)
}

// AttendanceHandler serves per-date registers.
type AttendanceHandler struct {
	service  attendanceService
	teachers teacherResolver
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service attendanceService, teachers teacherResolver) *AttendanceHandler {
	return &AttendanceHandler{service: service, teachers: teachers}
}

// List godoc
// @Summary List an assignment's attendance sessions
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, pagination, err := h.service.List(c.Request.Context(), teacher.ID, c.Param("id"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// Create godoc
// @Summary Open the register for a date
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param payload body dto.CreateAttendanceRequest true "Date"
// @Success 201 {object} response.Envelope
// @Router /assignments/{id}/attendance [post]
func (h *AttendanceHandler) Create(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload"))
		return
	}
	resp, err := h.service.Create(c.Request.Context(), teacher.ID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	response.JSON(c, status, resp, nil)
}

// Get godoc
// @Summary One attendance session with stats
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /attendance/{id} [get]
func (h *AttendanceHandler) Get(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.Get(c.Request.Context(), teacher.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Records godoc
// @Summary Register sheet for a session
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /attendance/{id}/records [get]
func (h *AttendanceHandler) Records(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	sheet, err := h.service.Sheet(c.Request.Context(), teacher.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// Confirm godoc
// @Summary Save the register and mark the session taken
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param payload body dto.ConfirmAttendanceRequest true "Records"
// @Success 200 {object} response.Envelope
// @Router /attendance/{id}/confirm [post]
func (h *AttendanceHandler) Confirm(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ConfirmAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload"))
		return
	}
	resp, err := h.service.Confirm(c.Request.Context(), teacher.ID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
