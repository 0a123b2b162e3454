package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"agensi-backend/internal/app/dto"
	"agensi-backend/internal/app/repository"
	"agensi-backend/internal/app/storage"
)

// APIHandler holds the handlers for the business REST API.
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	ManageUsers *ManageUsersHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, manageUsers *ManageUsersHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		ManageUsers: manageUsers,
	}
}

// ============ Helpers ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(id), nil
}

// parseTanggal accepts RFC3339 or a plain YYYY-MM-DD date from the forms.
func parseTanggal(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal must be RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}

func logHandlerError(where string, err error) {
	logrus.WithError(err).Error(where)
}
