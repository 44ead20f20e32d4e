package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CommentRequest struct {
	Body string `form:"body" binding:"required"`
}

// EventLikeToggle flips the caller's like on the event and reports the new
// state together with the fresh count.
func EventLikeToggle(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.GetEventByID(db.Instance, id); err != nil {
		respondError(c, err)
		return
	}
	liked, err := models.ToggleLike(db.Instance, id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := models.LikeCount(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "liked": liked, "count": count})
}

// EventLikes is public: the count never requires a session; "liked" is
// filled in only when one is present.
func EventLikes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	count, err := models.LikeCount(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	liked := false
	if user := loadSessionUser(c); user.ID != 0 {
		liked, _ = models.HasLiked(db.Instance, id, user.ID)
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "liked": liked, "count": count})
}

func EventComments(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	comments, err := models.GetComments(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func EventCommentAdd(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := models.GetEventByID(db.Instance, id); err != nil {
		respondError(c, err)
		return
	}
	r := CommentRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	comment, err := models.AddComment(db.Instance, id, user.ID, r.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func EventCommentDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteComment(db.Instance, id, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
