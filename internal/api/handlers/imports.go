package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"albion-backend/internal/config"
	"albion-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportHandler handles spreadsheet order import endpoints
type ImportHandler struct {
	imports     service.ImportServiceInterface
	maxFileSize int64
	uploadDir   string
}

// NewImportHandler creates a new import handler
func NewImportHandler(imports service.ImportServiceInterface, cfg *config.Config) *ImportHandler {
	return &ImportHandler{
		imports:     imports,
		maxFileSize: cfg.ImportMaxFileSize,
		uploadDir:   cfg.ImportUploadDir,
	}
}

// ImportOrders accepts an uploaded XLSX workbook and loads its orders. The
// workbook is retained in the upload directory so failed imports can be
// inspected afterwards.
func (h *ImportHandler) ImportOrders(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > h.maxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds maximum upload size"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to store uploaded file"})
		return
	}
	saved := filepath.Join(h.uploadDir,
		fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(header.Filename)))
	if err := c.SaveUploadedFile(header, saved); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to store uploaded file"})
		return
	}

	file, err := os.Open(saved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to read uploaded file"})
		return
	}
	defer file.Close()

	job, err := h.imports.ImportOrders(header.Filename, file, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetImportJob returns the status and log of one import run
func (h *ImportHandler) GetImportJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import job ID"})
		return
	}

	job, err := h.imports.GetJob(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
