package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
)

// Context keys set by the session middlewares.
const (
	KeyUser      = "user"
	KeyUserID    = "user_id"
	KeyRole      = "role"
	KeySessionID = "session_id"
	KeyRequestID = "request_id"
)

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func abort(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	msg := http.StatusText(status)
	var ae *utils.AppError
	if errors.As(err, &ae) {
		msg = ae.Message
	}
	c.AbortWithStatusJSON(status, apiError{Code: utils.CodeOf(err), Message: msg})
}

// BearerToken returns the token of an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func setSession(c *gin.Context, sess *models.Session) {
	u := sess.User
	c.Set(KeyUser, &u)
	c.Set(KeyUserID, u.ID)
	c.Set(KeyRole, string(u.Role))
	c.Set(KeySessionID, sess.SessionID)
}

// SessionAuth requires a bearer token that resolves to a live session.
func SessionAuth(sessions services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := BearerToken(c)
		if raw == "" {
			abort(c, utils.E(utils.CodeUnauthorized, "SessionAuth", "missing bearer token", nil))
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), raw)
		if err != nil {
			abort(c, err)
			return
		}

		setSession(c, sess)
		c.Next()
	}
}
