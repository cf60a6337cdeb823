package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"espora/models"
	"espora/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth stands in for the JWT middleware.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	}
}

func newTestRouter(t *testing.T, s *store.Memory, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init(s, nil, nil)

	r := gin.New()
	api := r.Group("/api", fakeAuth(userID))
	api.GET("/feed", GetFeed)
	api.GET("/post/:id", GetPost)
	api.POST("/post/:id/like", LikeToggle)
	api.POST("/post/:id/save", SaveToggle)
	api.POST("/post/:id/coment", ReplyPost)
	api.POST("/coment/:id/reply", ReplyComent)
	api.POST("/user/:id/follow", FollowToggle)
	r.POST("/api/session", SetSession)
	r.POST("/api/logout", Logout)
	return r
}

func seed(t *testing.T) (*store.Memory, string, string) {
	t.Helper()
	s := store.NewMemory()
	ctx := context.Background()

	userID, err := s.InsertUser(ctx, &models.User{
		Name:         "Ana",
		LikedPostIds: []string{},
		SavedPostIds: []string{},
		Followers:    []string{},
		Followed:     []string{},
	})
	require.NoError(t, err)

	postID, err := s.InsertPost(ctx, &models.Post{
		UserID:    userID,
		Title:     "obra",
		CreatedAt: time.Now(),
		Likes:     3,
	})
	require.NoError(t, err)

	return s, userID, postID
}

func TestGetFeedEmpty(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()
	userID, err := s.InsertUser(ctx, &models.User{Name: "Ana"})
	require.NoError(t, err)

	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posts":[]`)
	assert.Contains(t, w.Body.String(), `"users":{}`)
}

func TestLikeToggleEndpoint(t *testing.T) {
	s, userID, postID := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/post/"+postID+"/like", strings.NewReader(`{"on":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	post, err := s.GetPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, 4, post.Likes)
}

func TestLikeToggleMissingPost(t *testing.T) {
	s, userID, _ := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/post/000000000000000000000001/like", strings.NewReader(`{"on":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplyPostWhitespaceText(t *testing.T) {
	s, userID, postID := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/post/"+postID+"/coment", strings.NewReader(`{"coment":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	coments, err := s.ListComents(context.Background(), postID)
	require.NoError(t, err)
	assert.Empty(t, coments)
}

func TestReplyPostAndFetchTree(t *testing.T) {
	s, userID, postID := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/post/"+postID+"/coment", strings.NewReader(`{"coment":"bravo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/post/"+postID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comentCount":1`)
	assert.Contains(t, w.Body.String(), "bravo")
}

func TestFollowSelf(t *testing.T) {
	s, userID, _ := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/"+userID+"/follow", strings.NewReader(`{"follow":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetSessionCookie(t *testing.T) {
	s, userID, _ := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"token":"abc123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "token=abc123")
	assert.Contains(t, cookie, "Path=/")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "Max-Age=604800")
	assert.Contains(t, cookie, "SameSite=Lax")
}

func TestLogoutClearsCookie(t *testing.T) {
	s, userID, _ := seed(t)
	r := newTestRouter(t, s, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "token=;")
}
