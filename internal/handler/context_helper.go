package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/middleware"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type teacherResolver interface {
	TeacherForUser(ctx context.Context, userID string) (*models.Teacher, error)
}

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// teacherFromContext resolves the staff profile behind the authenticated
// request, or returns nil with an error already suitable for response.Error.
func teacherFromContext(c *gin.Context, resolver teacherResolver) (*models.Teacher, error) {
	claims := claimsFromContext(c)
	if claims == nil {
		return nil, appErrors.ErrUnauthorized
	}
	return resolver.TeacherForUser(c.Request.Context(), claims.UserID)
}
