package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/services"
)

type EmployerHandler struct {
	svc services.EmployerService
}

func NewEmployerHandler(svc services.EmployerService) *EmployerHandler {
	return &EmployerHandler{svc: svc}
}

func (h *EmployerHandler) Jobs(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	jobs, err := h.svc.Jobs(c.Request.Context(), u)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *EmployerHandler) Analytics(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	stats, err := h.svc.Analytics(c.Request.Context(), u)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
