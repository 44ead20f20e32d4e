package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type EventSaveRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Location    string `form:"location"`
	Category    string `form:"category"`
	StartsAt    int64  `form:"starts_at"`
	EndsAt      int64  `form:"ends_at"`
}

func (r *EventSaveRequest) toModel(imagePath string) models.Event {
	return models.Event{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Category:    r.Category,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		ImagePath:   imagePath,
	}
}

func EventList(c *gin.Context) {
	events, err := models.GetEvents(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func EventGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	event, err := models.GetEventByID(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func EventCreate(c *gin.Context, user *models.User) {
	r := EventSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	imagePath, _, _, err := saveUploadedFile(c, "image", storage.LocationContent)
	if err != nil {
		respondError(c, err)
		return
	}
	event, err := models.CreateEvent(db.Instance, r.toModel(imagePath))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func EventUpdate(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := EventSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	imagePath, _, _, err := saveUploadedFile(c, "image", storage.LocationContent)
	if err != nil {
		respondError(c, err)
		return
	}
	event, err := models.UpdateEvent(db.Instance, id, r.toModel(imagePath))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func EventDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteEvent(db.Instance, storage.GetDefaultStorage(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
