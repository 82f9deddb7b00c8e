package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/gin-gonic/gin"
)

// maxImportSize caps uploaded spreadsheets at 10MB.
const maxImportSize = 10 << 20

type LibraryHandler struct {
	svc       *service.LibraryService
	importSvc *service.ImportService
}

func NewLibraryHandler(svc *service.LibraryService, importSvc *service.ImportService) *LibraryHandler {
	return &LibraryHandler{svc: svc, importSvc: importSvc}
}

func (h *LibraryHandler) List(c *gin.Context) {
	filters := map[string]string{
		"categorie":   c.Query("categorie"),
		"leverancier": c.Query("leverancier"),
		"search":      c.Query("search"),
	}
	items, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": items})
}

func (h *LibraryHandler) Create(c *gin.Context) {
	var req service.LibraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": item})
}

func (h *LibraryHandler) Update(c *gin.Context) {
	var req service.LibraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": item})
}

func (h *LibraryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// ImportPreview parses an uploaded spreadsheet and proposes a column
// mapping for the user to review.
func (h *LibraryHandler) ImportPreview(c *gin.Context) {
	data, filename, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	preview, err := h.importSvc.Preview(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{
		"headers":  preview.Headers,
		"rows":     preview.Rows,
		"mapping":  preview.Mapping,
		"filename": filename,
	}})
}

// Import commits a reviewed import as one bulk insert.
func (h *LibraryHandler) Import(c *gin.Context) {
	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	count, err := h.importSvc.Import(c.Request.Context(), req, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"aantal": count}})
}

// ImportFile is the one-shot variant: upload, auto-map and import in a
// single request, archiving the workbook afterwards.
func (h *LibraryHandler) ImportFile(c *gin.Context) {
	data, filename, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	preview, err := h.importSvc.Preview(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": err.Error()})
		return
	}
	req := service.ImportRequest{
		Categorie:   c.PostForm("categorie"),
		Leverancier: c.PostForm("leverancier"),
		Mapping:     preview.Mapping,
		Rows:        preview.Rows,
		Filename:    filename,
	}
	count, err := h.importSvc.Import(c.Request.Context(), req, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"aantal": count}})
}

func readUpload(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("geen bestand ontvangen: %w", err)
	}
	if fileHeader.Size > maxImportSize {
		return nil, "", fmt.Errorf("bestand is te groot")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("bestand openen mislukt: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("bestand lezen mislukt: %w", err)
	}
	return data, fileHeader.Filename, nil
}
