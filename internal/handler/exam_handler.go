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

type examService interface {
	List(ctx context.Context, teacherID, assignmentID string) (*dto.ExamListResponse, error)
	Create(ctx context.Context, teacherID, assignmentID string, req dto.CreateExamRequest) (*dto.CreateExamResponse, error)
	Roster(ctx context.Context, teacherID, examID string, page int) (*dto.ExamRosterResponse, *models.Pagination, error)
	Confirm(ctx context.Context, teacherID, examID string, req dto.ConfirmMarksRequest) (*dto.ConfirmMarksResponse, error)
}

// ExamHandler serves exam sessions and mark entry.
type ExamHandler struct {
	service  examService
	teachers teacherResolver
}

// NewExamHandler constructs the handler.
func NewExamHandler(service examService, teachers teacherResolver) *ExamHandler {
	return &ExamHandler{service: service, teachers: teachers}
}

// List godoc
// @Summary List an assignment's exam sessions
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.service.List(c.Request.Context(), teacher.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Create godoc
// @Summary Open an exam session for an assignment
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param payload body dto.CreateExamRequest true "Session name"
// @Success 201 {object} response.Envelope
// @Router /assignments/{id}/exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload"))
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

// Roster godoc
// @Summary Mark entry sheet for an exam session
// @Tags Exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam session ID"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /exams/{id}/roster [get]
func (h *ExamHandler) Roster(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	roster, pagination, err := h.service.Roster(c.Request.Context(), teacher.ID, c.Param("id"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, pagination)
}

// Confirm godoc
// @Summary Save marks and finalize an exam session
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam session ID"
// @Param payload body dto.ConfirmMarksRequest true "Marks"
// @Success 200 {object} response.Envelope
// @Router /exams/{id}/confirm [post]
func (h *ExamHandler) Confirm(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ConfirmMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marks payload"))
		return
	}
	resp, err := h.service.Confirm(c.Request.Context(), teacher.ID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
