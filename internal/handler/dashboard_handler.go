package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	"github.com/noah-isme/teacher-portal-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context, teacher *models.Teacher) (*dto.DashboardResponse, error)
}

// DashboardHandler serves the teacher's landing summary.
type DashboardHandler struct {
	service  dashboardService
	teachers teacherResolver
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, teachers teacherResolver) *DashboardHandler {
	return &DashboardHandler{service: service, teachers: teachers}
}

// Summary godoc
// @Summary Teacher dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	teacher, err := teacherFromContext(c, h.teachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), teacher)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
