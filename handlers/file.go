package handlers

import (
	"net/http"
	"strings"

	"clubserver/storage"

	"github.com/gin-gonic/gin"
)

// FileFetch serves stored files by their opaque path. All stored content is
// publicly readable; upload paths are unguessable UUIDs.
func FileFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		c.JSON(http.StatusBadRequest, Response{"invalid path"})
		return
	}
	storage.GetDefaultStorage().Serve(path, c.Request, c.Writer)
}
