package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"clubserver/auth"
	"clubserver/models"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var OKResponse = Response{}

// Error mapper used by every handler: model failures become statuses, and
// anything unclassified is logged and reported generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	case errors.Is(err, models.ErrAuth):
		c.JSON(http.StatusUnauthorized, Response{"access denied"})
	case errors.Is(err, models.ErrAuthorization):
		c.JSON(http.StatusForbidden, Response{"not allowed"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{"not found"})
	case errors.Is(err, models.ErrStorage):
		log.Printf("storage error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{"storage error"})
	case errors.Is(err, models.ErrRepository):
		log.Printf("database error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{"database error"})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{"an unexpected error occurred"})
	}
}

// loadSessionUser returns the session's user, zero-valued when anonymous.
func loadSessionUser(c *gin.Context) models.User {
	return auth.LoadSession(c).User()
}

// idParam reads the numeric :id path segment.
func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, Response{"invalid id"})
		return 0, false
	}
	return id, true
}
