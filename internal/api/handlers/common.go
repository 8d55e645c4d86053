package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/api/middleware"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeOf(err),
		Message: http.StatusText(status),
	})
}

func invalidBody(op string, err error) error {
	return utils.E(utils.CodeInvalidArgument, op, "invalid request body", err)
}

// currentUser returns the session user or nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(middleware.KeyUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func requireUser(c *gin.Context) (*models.User, bool) {
	if u := currentUser(c); u != nil {
		return u, true
	}
	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "user not authenticated", nil))
	return nil, false
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.KeySessionID)
}
