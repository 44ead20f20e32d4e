package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"

	"github.com/gin-gonic/gin"
)

// Results carry nested item rows, so they bind as JSON rather than form data.
type ResultSaveRequest struct {
	Title         string              `json:"title" binding:"required"`
	CompetitionID *uint64             `json:"competition_id"`
	PlayedAt      int64               `json:"played_at"`
	Notes         string              `json:"notes"`
	Items         []ResultItemRequest `json:"items"`
}

type ResultItemRequest struct {
	Place int    `json:"place"`
	Name  string `json:"name" binding:"required"`
	Score string `json:"score"`
}

func (r *ResultSaveRequest) toModel() models.Result {
	result := models.Result{
		Title:         r.Title,
		CompetitionID: r.CompetitionID,
		PlayedAt:      r.PlayedAt,
		Notes:         r.Notes,
	}
	for _, item := range r.Items {
		result.Items = append(result.Items, models.ResultItem{
			Place: item.Place,
			Name:  item.Name,
			Score: item.Score,
		})
	}
	return result
}

func ResultList(c *gin.Context) {
	results, err := models.GetResults(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func ResultGet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.GetResultByID(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func ResultCreate(c *gin.Context, user *models.User) {
	r := ResultSaveRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	result, err := models.CreateResult(db.Instance, r.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func ResultUpdate(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := ResultSaveRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	result, err := models.UpdateResult(db.Instance, id, r.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func ResultDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteResult(db.Instance, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
