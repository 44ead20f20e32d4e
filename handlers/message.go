package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type MessageSubmitRequest struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required"`
	Phone     string `form:"phone"`
	Body      string `form:"body" binding:"required"`
}

type MessageStatusRequest struct {
	Status string `form:"status" binding:"required"`
}

// MessageSubmit is the public contact form endpoint.
func MessageSubmit(c *gin.Context) {
	r := MessageSubmitRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	message, err := models.SubmitMessage(db.Instance, r.FirstName, r.LastName, r.Email, r.Phone, r.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "id": message.ID})
}

func MessageList(c *gin.Context, user *models.User) {
	messages, err := models.GetMessages(db.Instance)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MessageOpen returns one message; opening an unread message marks it read.
func MessageOpen(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	message, err := models.OpenMessage(db.Instance, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func MessageSetStatus(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r := MessageStatusRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	message, err := models.SetMessageStatus(db.Instance, id, r.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func MessageDelete(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := models.DeleteMessage(db.Instance, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
