package handlers

import (
	"context"
	"net/http"
	"time"

	"espora/social"
	"espora/store"

	"github.com/gin-gonic/gin"
)

type FollowRequest struct {
	Follow *bool `json:"follow" binding:"required"`
}

// FollowToggle follows or unfollows the user in the path on behalf of the
// session user.
func FollowToggle(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := follows.Set(ctx, c.GetString("userId"), c.Param("id"), *req.Follow)
	if err == social.ErrSelfFollow {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update follow state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
