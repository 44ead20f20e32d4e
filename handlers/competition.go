package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CompetitionSaveRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Season      string `form:"season"`
	Status      string `form:"status"`
	StartsAt    int64  `form:"starts_at"`
	EndsAt      int64  `form:"ends_at"`
}

func (r *CompetitionSaveRequest) toModel(imagePath string) models.Competition {
	return models.Competition{
		Title:       r.Title,
		Description: r.Description,
		Season:      r.Season,
		Status:      r.Status,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		ImagePath:   imagePath,
	}
}

func CompetitionList(c *gin.Context) {
	competitions, err := models.GetCompetitions(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, competitions)
}

func CompetitionGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	competition, err := models.GetCompetitionByID(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

func CompetitionCreate(c *gin.Context, user *models.User) {
	r := CompetitionSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	imagePath, _, _, err := saveUploadedFile(c, "image", storage.LocationContent)
	if err != nil {
		respondError(c, err)
		return
	}
	competition, err := models.CreateCompetition(db.Instance, r.toModel(imagePath))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

func CompetitionUpdate(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := CompetitionSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	imagePath, _, _, err := saveUploadedFile(c, "image", storage.LocationContent)
	if err != nil {
		respondError(c, err)
		return
	}
	competition, err := models.UpdateCompetition(db.Instance, id, r.toModel(imagePath))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

func CompetitionDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteCompetition(db.Instance, storage.GetDefaultStorage(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
