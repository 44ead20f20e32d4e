package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AlbumSaveRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}

type AlbumCoverRequest struct {
	ImagePath string `form:"image_path" binding:"required"`
}

func AlbumList(c *gin.Context) {
	albums, err := models.GetAlbums(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func AlbumGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	album, err := models.GetAlbumByID(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func AlbumImages(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	images, err := models.GetImages(db.Instance, &id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func AlbumCreate(c *gin.Context, user *models.User) {
	r := AlbumSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	album, err := models.CreateAlbum(db.Instance, r.Title, r.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func AlbumUpdate(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := AlbumSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	album, err := models.UpdateAlbum(db.Instance, id, r.Title, r.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func AlbumSetCover(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := AlbumCoverRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := models.SetAlbumCover(db.Instance, id, r.ImagePath); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func AlbumGetCover(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	image, err := models.GetAlbumCover(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

// AlbumDelete removes the album only; its images stay, unassigned.
func AlbumDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteAlbum(db.Instance, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
