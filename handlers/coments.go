package handlers

import (
	"context"
	"net/http"
	"time"

	"espora/comments"
	"espora/store"

	"github.com/gin-gonic/gin"
)

type ComentRequest struct {
	Coment string `json:"coment" binding:"required"`
}

type ReplyRequest struct {
	Coment string `json:"coment" binding:"required"`
	PostID string `json:"postId" binding:"required"`
}

// ReplyPost appends a comment under a post.
func ReplyPost(c *gin.Context) {
	var req ComentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := coments.SubmitComent(ctx, c.GetString("userId"), c.Param("id"), req.Coment)
	if err == comments.ErrEmptyText {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El comentario no puede estar vacío"})
		return
	}
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comentId": id})
}

// ReplyComent appends a reply under a comment.
func ReplyComent(c *gin.Context) {
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := coments.SubmitReply(ctx, c.GetString("userId"), req.PostID, c.Param("id"), req.Coment)
	if err == comments.ErrEmptyText {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El comentario no puede estar vacío"})
		return
	}
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post or comment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit reply"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"replyId": id})
}
