package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/jobboard/internal/services"
	"github.com/yoockh/jobboard/internal/storage"
	"github.com/yoockh/jobboard/internal/utils"
)

const maxResumeSize = 10 << 20

type ResumeHandler struct {
	svc     services.ResumeService
	objects *storage.MemoryUploader
}

// NewResumeHandler serves uploaded objects back only when objects is the
// in-memory uploader; GCS objects are public URLs already.
func NewResumeHandler(svc services.ResumeService, objects *storage.MemoryUploader) *ResumeHandler {
	return &ResumeHandler{svc: svc, objects: objects}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	const op = "ResumeHandler.Upload"

	u, ok := requireUser(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > maxResumeSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file must be between 1 byte and 10MB", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	// sniff the first 512 bytes, then stream them back in front of the rest
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	head = head[:n]
	if http.DetectContentType(head) != "application/pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid content type (must be pdf)", nil))
		return
	}

	row, err := h.svc.Upload(c.Request.Context(), u, services.ResumeUpload{
		FileName: fh.Filename,
		FileSize: int(fh.Size),
		MimeType: "application/pdf",
		Body:     io.MultiReader(bytes.NewReader(head), file),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *ResumeHandler) Latest(c *gin.Context) {
	u, ok := requireUser(c)
	if !ok {
		return
	}

	row, err := h.svc.Latest(c.Request.Context(), u)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Download serves an object stored by the in-memory uploader.
func (h *ResumeHandler) Download(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("object"), "/")
	if h.objects == nil || name == "" {
		writeError(c, utils.E(utils.CodeNotFound, "ResumeHandler.Download", "object not found", nil))
		return
	}
	body, ok := h.objects.Object(name)
	if !ok {
		writeError(c, utils.E(utils.CodeNotFound, "ResumeHandler.Download", "object not found", nil))
		return
	}
	c.Data(http.StatusOK, "application/pdf", body)
}
