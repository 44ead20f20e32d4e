package handlers

import (
	"mime/multipart"

	"clubserver/config"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
)

// saveUploadedFile stores an optional multipart file field. Returns an
// empty path when the field was not supplied.
func saveUploadedFile(c *gin.Context, field, location string) (path string, size int64, name string, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Field absent is not an error for optional uploads
		return "", 0, "", nil
	}
	if fileHeader.Size > int64(config.UPLOAD_MAX_SIZE) {
		return "", 0, "", models.ErrValidation
	}
	var file multipart.File
	if file, err = fileHeader.Open(); err != nil {
		return "", 0, "", models.ErrStorage
	}
	defer file.Close()
	path, size, err = models.SaveContentFile(storage.GetDefaultStorage(), file, fileHeader.Filename, location)
	return path, size, fileHeader.Filename, err
}
