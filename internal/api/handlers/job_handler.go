package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) List(c *gin.Context) {
	var f models.JobFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.List", "invalid query", err))
		return
	}

	jobs, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidBody("JobHandler.Create", err))
		return
	}

	job, err := h.svc.Create(c.Request.Context(), u, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	var patch models.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, invalidBody("JobHandler.Update", err))
		return
	}

	job, err := h.svc.Update(c.Request.Context(), u, c.Param("job_id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	jobID := c.Param("job_id")
	deleted, err := h.svc.Delete(c.Request.Context(), u, jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, utils.E(utils.CodeNotFound, "JobHandler.Delete", "job not found", nil))
		return
	}
	c.Status(http.StatusNoContent)
}
