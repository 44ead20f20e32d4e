package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type DocumentSaveRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category"`
}

func DocumentList(c *gin.Context) {
	documents, err := models.GetDocuments(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

func DocumentGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	document, err := models.GetDocumentByID(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func DocumentCreate(c *gin.Context, user *models.User) {
	r := DocumentSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	filePath, fileSize, fileName, err := saveUploadedFile(c, "file", storage.LocationDocuments)
	if err != nil {
		respondError(c, err)
		return
	}
	document, err := models.CreateDocument(db.Instance, models.Document{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FileName:    fileName,
		FilePath:    filePath,
		FileSize:    fileSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func DocumentUpdate(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := DocumentSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	filePath, fileSize, fileName, err := saveUploadedFile(c, "file", storage.LocationDocuments)
	if err != nil {
		respondError(c, err)
		return
	}
	document, err := models.UpdateDocument(db.Instance, storage.GetDefaultStorage(), id, models.Document{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FileName:    fileName,
		FilePath:    filePath,
		FileSize:    fileSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func DocumentDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteDocument(db.Instance, storage.GetDefaultStorage(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
