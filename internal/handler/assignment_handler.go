package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
	"github.com/noah-isme/teacher-portal-api/pkg/response"
)

type assignmentService interface {
	teacherResolver
	List(ctx context.Context, teacherID string, req dto.AssignmentListRequest) (*dto.AssignmentListResponse, *models.Pagination, error)
}

// AssignmentHandler serves the teacher's class list.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(service assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// List godoc
// @Summary List the teacher's class assignments
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param yearSem query string false "Term filter, e.g. 2025.1"
// @Param year query string false "Year substring filter"
// @Param semester query int false "Semester filter"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.service)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	resp, pagination, err := h.service.List(c.Request.Context(), teacher.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, pagination)
}
