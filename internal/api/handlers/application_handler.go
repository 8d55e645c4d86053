package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	// an empty body is a valid application
	var req models.ApplicationInput
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, invalidBody("ApplicationHandler.Apply", err))
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), u, c.Param("job_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	apps, err := h.svc.ListMine(c.Request.Context(), u)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	apps, err := h.svc.ListForJob(c.Request.Context(), u, c.Param("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

type SetStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidBody("ApplicationHandler.SetStatus", err))
		return
	}

	app, err := h.svc.SetStatus(c.Request.Context(), u, c.Param("application_id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
