package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	"github.com/noah-isme/teacher-portal-api/pkg/response"
)

type reportService interface {
	Build(ctx context.Context, teacherID, assignmentID string) (*dto.ReportResponse, error)
	Students(ctx context.Context, teacherID, assignmentID string, page int) (*dto.StudentTotalsResponse, *models.Pagination, error)
	Export(ctx context.Context, teacherID, assignmentID, format string) ([]byte, string, error)
}

// ReportHandler serves the per-subject performance report.
type ReportHandler struct {
	service  reportService
	teachers teacherResolver
}

// NewReportHandler constructs the handler.
func NewReportHandler(service reportService, teachers teacherResolver) *ReportHandler {
	return &ReportHandler{service: service, teachers: teachers}
}

// Report godoc
// @Summary Per-subject performance report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/report [get]
func (h *ReportHandler) Report(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.service.Build(c.Request.Context(), teacher.ID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Students godoc
// @Summary Per-student marks and attendance totals for an assignment
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/students [get]
func (h *ReportHandler) Students(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	totals, pagination, err := h.service.Students(c.Request.Context(), teacher.ID, c.Param("id"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, totals, pagination)
}

// Export godoc
// @Summary Download the report as csv or pdf
// @Tags Reports
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param format query string true "csv or pdf"
// @Success 200
// @Router /assignments/{id}/report/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.Export(c.Request.Context(), teacher.ID, c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("report-%s.%s", c.Param("id"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
