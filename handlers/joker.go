package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type JokerUpdateRequest struct {
	WinnerName     string  `form:"winner_name"`
	WinAmount      float64 `form:"win_amount"`
	CurrentJackpot float64 `form:"current_jackpot"`
}

// JokerGet returns the current jackpot state. Before the first draw is
// recorded there is nothing to show.
func JokerGet(c *gin.Context) {
	draw, err := models.CurrentJokerDraw(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

func JokerHistory(c *gin.Context, user *models.User) {
	history, err := models.GetJokerDrawHistory(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func JokerUpdate(c *gin.Context, user *models.User) {
	r := JokerUpdateRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	imagePath, _, _, err := saveUploadedFile(c, "winner_image", storage.LocationContent)
	if err != nil {
		respondError(c, err)
		return
	}
	if imagePath == "" {
		// Keep the previous winner picture when none is uploaded
		if current, err := models.CurrentJokerDraw(db.Instance); err == nil {
			imagePath = current.WinnerImagePath
		}
	}
	draw, err := models.UpdateJokerDraw(db.Instance, r.WinnerName, r.WinAmount, r.CurrentJackpot, imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}
