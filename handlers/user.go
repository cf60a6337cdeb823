package handlers

import (
	"context"
	"net/http"
	"time"

	"espora/logger"
	"espora/storage"
	"espora/store"

	"github.com/gin-gonic/gin"
)

const adultAge = 18

// Step1Request is the first completion step: personal profile.
type Step1Request struct {
	Birthdate string `json:"birthdate" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Region    string `json:"region" binding:"required"`
}

// Step2Request is the second completion step: creative profile. Completing
// it marks the registration done.
type Step2Request struct {
	Category         string `json:"category" binding:"required"`
	ArtisticStyle    string `json:"artisticStyle" binding:"required"`
	AboutYourProject string `json:"aboutYourProject" binding:"required"`
	WantsFromEspora  string `json:"wantsFromEspora" binding:"required"`
}

func GetMe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := docs.GetUser(ctx, c.GetString("userId"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func CompleteStep1(c *gin.Context) {
	var req Step1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes completar todos los campos"})
		return
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de nacimiento inválida"})
		return
	}
	if age(birthdate) < adultAge {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes ser mayor de edad para registrarte"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = docs.MergeUser(ctx, c.GetString("userId"), map[string]interface{}{
		"birthdate": req.Birthdate,
		"country":   req.Country,
		"region":    req.Region,
	})
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func CompleteStep2(c *gin.Context) {
	var req Step2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes completar todos los campos"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := docs.MergeUser(ctx, c.GetString("userId"), map[string]interface{}{
		"category":          req.Category,
		"artisticStyle":     req.ArtisticStyle,
		"aboutYourProject":  req.AboutYourProject,
		"wantsFromEspora":   req.WantsFromEspora,
		"registerCompleted": true,
	})
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadProfilePhoto replaces the profile photo in place and merges the new
// URL into the user document.
func UploadProfilePhoto(c *gin.Context) {
	userID := c.GetString("userId")

	photoFile, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photo file provided"})
		return
	}
	defer photoFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := uploads.Upload(ctx, storage.ProfilePhotoPath(userID), photoFile)
	if err != nil {
		logger.Log.WithError(err).Error("profile photo upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	if err := docs.MergeUser(ctx, userID, map[string]interface{}{"profilePhoto": url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetUser returns a public profile plus its recent gallery.
func GetUser(c *gin.Context) {
	userID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := docs.GetUser(ctx, userID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	gallery, err := assembler.Gallery(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               user.ID.Hex(),
		"name":             user.Name,
		"userName":         user.UserName,
		"category":         user.Category,
		"profilePhoto":     user.ProfilePhoto,
		"aboutYourProject": user.AboutYourProject,
		"wantsFromEspora":  user.WantsFromEspora,
		"followers":        user.Followers,
		"followed":         user.Followed,
		"isUser":           user.ID.Hex() == c.GetString("userId"),
		"gallery":          gallery,
	})
}

// GetUserGallery returns just the image URLs of a user's recent posts.
func GetUserGallery(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gallery, err := assembler.Gallery(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": gallery})
}

func age(birthdate time.Time) int {
	now := time.Now()
	years := now.Year() - birthdate.Year()
	if now.YearDay() < birthdate.YearDay() {
		years--
	}
	return years
}
