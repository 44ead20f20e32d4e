package handlers

import (
	"net/http"
	"strconv"

	"clubserver/config"
	"clubserver/db"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ImageMetaRequest struct {
	Title       string  `form:"title"`
	AltText     string  `form:"alt_text"`
	Description string  `form:"description"`
	Category    string  `form:"category"`
	AlbumID     *uint64 `form:"album_id"`
}

func GalleryList(c *gin.Context) {
	var albumID *uint64
	if v := c.Query("album_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{"invalid album_id"})
			return
		}
		albumID = &id
	}
	images, err := models.GetImages(db.Instance, albumID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func GalleryGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	image, err := models.GetImageByID(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func GalleryUpload(c *gin.Context, user *models.User) {
	r := ImageMetaRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"file is required"})
		return
	}
	if fileHeader.Size > int64(config.UPLOAD_MAX_SIZE) {
		c.JSON(http.StatusBadRequest, Response{"file too large"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"file is unreadable"})
		return
	}
	defer file.Close()
	image, err := models.UploadImage(db.Instance, storage.GetDefaultStorage(), file, fileHeader.Filename, r.AlbumID, models.ImageMeta{
		Title:       r.Title,
		AltText:     r.AltText,
		Description: r.Description,
		Category:    r.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func GalleryUpdate(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := ImageMetaRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	image, err := models.UpdateImage(db.Instance, id, r.AlbumID, models.ImageMeta{
		Title:       r.Title,
		AltText:     r.AltText,
		Description: r.Description,
		Category:    r.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func GalleryDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteImage(db.Instance, storage.GetDefaultStorage(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
