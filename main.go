package main

import (
	"log"
	"strings"
	"time"

	"clubserver/auth"
	"clubserver/config"
	"clubserver/db"
	"clubserver/handlers"
	"clubserver/models"
	"clubserver/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	db.Init()
	models.Init(db.Instance)
	models.InitStorage(db.Instance)

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	sessionKey := config.SESSION_KEY
	if sessionKey == "" {
		sessionKey = utils.RandSalt(32)
	}
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/files/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	authRouter := &auth.Router{Base: router}

	// Public site
	router.GET("/events", handlers.EventList)
	router.GET("/events/:id", handlers.EventGet)
	router.GET("/events/:id/likes", handlers.EventLikes)
	router.GET("/events/:id/comments", handlers.EventComments)
	router.GET("/competitions", handlers.CompetitionList)
	router.GET("/competitions/:id", handlers.CompetitionGet)
	router.GET("/documents", handlers.DocumentList)
	router.GET("/documents/:id", handlers.DocumentGet)
	router.GET("/results", handlers.ResultList)
	router.GET("/results/:id", handlers.ResultGet)
	router.GET("/albums", handlers.AlbumList)
	router.GET("/albums/:id", handlers.AlbumGet)
	router.GET("/albums/:id/images", handlers.AlbumImages)
	router.GET("/albums/:id/cover", handlers.AlbumGetCover)
	router.GET("/gallery", handlers.GalleryList)
	router.GET("/gallery/:id", handlers.GalleryGet)
	router.GET("/joker", handlers.JokerGet)
	router.GET("/files/*path", handlers.FileFetch)
	router.POST("/messages", handlers.MessageSubmit)

	// Session
	router.POST("/user/login", handlers.UserLogin)
	router.GET("/user/status", handlers.UserGetStatus)
	authRouter.POST("/user/logout", handlers.UserLogout)

	// Signed-in members
	authRouter.POST("/events/:id/like", handlers.EventLikeToggle)
	authRouter.POST("/events/:id/comments", handlers.EventCommentAdd)
	authRouter.DELETE("/comments/:id", handlers.EventCommentDelete)

	// Admin dashboard
	authRouter.POST("/events", handlers.EventCreate, models.PermissionAdmin)
	authRouter.PUT("/events/:id", handlers.EventUpdate, models.PermissionAdmin)
	authRouter.DELETE("/events/:id", handlers.EventDelete, models.PermissionAdmin)
	authRouter.POST("/competitions", handlers.CompetitionCreate, models.PermissionAdmin)
	authRouter.PUT("/competitions/:id", handlers.CompetitionUpdate, models.PermissionAdmin)
	authRouter.DELETE("/competitions/:id", handlers.CompetitionDelete, models.PermissionAdmin)
	authRouter.POST("/documents", handlers.DocumentCreate, models.PermissionAdmin)
	authRouter.PUT("/documents/:id", handlers.DocumentUpdate, models.PermissionAdmin)
	authRouter.DELETE("/documents/:id", handlers.DocumentDelete, models.PermissionAdmin)
	authRouter.POST("/results", handlers.ResultCreate, models.PermissionAdmin)
	authRouter.PUT("/results/:id", handlers.ResultUpdate, models.PermissionAdmin)
	authRouter.DELETE("/results/:id", handlers.ResultDelete, models.PermissionAdmin)
	authRouter.POST("/albums", handlers.AlbumCreate, models.PermissionAdmin)
	authRouter.PUT("/albums/:id", handlers.AlbumUpdate, models.PermissionAdmin)
	authRouter.POST("/albums/:id/cover", handlers.AlbumSetCover, models.PermissionAdmin)
	authRouter.DELETE("/albums/:id", handlers.AlbumDelete, models.PermissionAdmin)
	authRouter.POST("/gallery", handlers.GalleryUpload, models.PermissionAdmin)
	authRouter.PUT("/gallery/:id", handlers.GalleryUpdate, models.PermissionAdmin)
	authRouter.DELETE("/gallery/:id", handlers.GalleryDelete, models.PermissionAdmin)
	authRouter.POST("/joker", handlers.JokerUpdate, models.PermissionAdmin)
	authRouter.GET("/joker/history", handlers.JokerHistory, models.PermissionAdmin)
	authRouter.GET("/messages", handlers.MessageList, models.PermissionAdmin)
	authRouter.GET("/messages/:id", handlers.MessageOpen, models.PermissionAdmin)
	authRouter.POST("/messages/:id/status", handlers.MessageSetStatus, models.PermissionAdmin)
	authRouter.DELETE("/messages/:id", handlers.MessageDelete, models.PermissionAdmin)
	authRouter.GET("/bucket/list", handlers.BucketList, models.PermissionAdmin)
	authRouter.POST("/bucket/save", handlers.BucketSave, models.PermissionAdmin)
	authRouter.POST("/user/save", handlers.UserSave, models.PermissionAdmin)
	authRouter.GET("/user/list", handlers.UserList, models.PermissionAdmin)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
