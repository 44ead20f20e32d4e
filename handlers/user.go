package handlers

import (
	"net/http"

	"clubserver/auth"
	"clubserver/db"
	"clubserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserLoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserCreateRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Admin    bool   `form:"admin"`
}

func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, success := models.UserLogin(db.Instance, postReq.Email, postReq.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, Response{"invalid credentials"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.JSON(http.StatusOK, gin.H{"error": "", "name": user.Name, "permissions": user.GetPermissions()})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

func UserGetStatus(c *gin.Context) {
	session := auth.LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "", "authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":         "",
		"authenticated": true,
		"name":          user.Name,
		"permissions":   user.GetPermissions(),
	})
}

func UserSave(c *gin.Context, user *models.User) {
	postReq := UserCreateRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	created, err := models.UserCreate(db.Instance, postReq.Name, postReq.Email, postReq.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if postReq.Admin {
		if err = created.Grant(db.Instance, user.ID, models.PermissionAdmin); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "user": created})
}

func UserList(c *gin.Context, user *models.User) {
	users := []models.User{}
	if err := db.Instance.Preload("Grants").Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{"database error"})
		return
	}
	c.JSON(http.StatusOK, users)
}
