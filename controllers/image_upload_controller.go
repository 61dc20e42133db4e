package controllers

import (
	"errors"
	"net/http"

	"annapurna-backend/services"
	"annapurna-backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadMealImage stores a base64 meal photo in S3 and returns the public
// URL for use as the meal's imageUrl.
func UploadMealImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	url, err := utils.UploadBase64Image(req.ImageBase64, "meals")
	if err != nil {
		// A payload that never parsed is the caller's mistake; only a
		// failed store is a server error.
		if errors.Is(err, utils.ErrInvalidImage) {
			respondError(c, &services.ValidationError{Fields: map[string]string{
				"image_base64": err.Error(),
			}})
			return
		}
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"url": url})
}
