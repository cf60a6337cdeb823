package handlers

import (
	"context"
	"net/http"
	"time"

	"espora/engagement"
	"espora/store"

	"github.com/gin-gonic/gin"
)

// ToggleRequest carries the intended state, not a blind flip, so a stale
// client repeating itself lands on a no-op instead of a double write.
type ToggleRequest struct {
	On *bool `json:"on" binding:"required"`
}

func toggle(c *gin.Context, kind engagement.Kind) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := engage.Toggle(ctx, c.GetString("userId"), c.Param("id"), kind, *req.On)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post or user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func LikeToggle(c *gin.Context) {
	toggle(c, engagement.Like)
}

func SaveToggle(c *gin.Context) {
	toggle(c, engagement.Save)
}
