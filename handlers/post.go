package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"espora/logger"
	"espora/models"
	"espora/storage"
	"espora/store"

	"github.com/gin-gonic/gin"
)

const maxPostImages = 5

// GetFeed returns the assembled home feed: every post newest first with its
// comment tree, plus the lookup table of referenced users.
func GetFeed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := assembler.Assemble(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("feed assembly failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPost returns one post with its full comment tree.
func GetPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	post, err := assembler.ResolvePost(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Publish creates a post, uploads its images under the post's blob path and
// then patches the image URLs onto the document. Images are immutable after
// this point.
func Publish(c *gin.Context) {
	userID := c.GetString("userId")

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La publicación debe contener título y descripción"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form data"})
		return
	}
	files := form.File["files"]
	if len(files) > maxPostImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Demasiadas imágenes"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	post := &models.Post{
		UserID:      userID,
		Title:       title,
		Description: description,
		Imgs:        []string{},
		CreatedAt:   time.Now(),
		Likes:       0,
		Saves:       0,
	}
	postID, err := docs.InsertPost(ctx, post)
	if err != nil {
		logger.Log.WithError(err).Error("publish insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	urls := make([]string, 0, len(files))
	for i, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}
		url, err := uploads.Upload(ctx, storage.PostImagePath(userID, postID, i), f)
		f.Close()
		if err != nil {
			logger.Log.WithError(err).WithField("postId", postID).Error("image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		urls = append(urls, url)
	}

	if len(urls) > 0 {
		if err := docs.SetPostImgs(ctx, postID, urls); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach images"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"postId": postID})
}
