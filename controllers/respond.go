package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"annapurna-backend/services"

	"github.com/gin-gonic/gin"
)

// respondData wraps a payload in the success envelope the frontend expects.
func respondData(c *gin.Context, status int, data gin.H) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// respondError maps service errors onto the HTTP error taxonomy. Anything
// unrecognized is logged server-side and surfaced as a bare 500.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid input", "errors": ve.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Invalid credentials"})
	case errors.Is(err, services.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal server error"})
	}
}

// currentUserID reads the id the auth middleware attached.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// pathID parses the :id route parameter. An unparsable id cannot name a
// record, so it reports the same not-found as a missing one.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, services.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}
