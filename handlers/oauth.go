package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"espora/logger"
	"espora/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOAuthConfig *oauth2.Config

func init() {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	if clientID != "" && clientSecret != "" {
		googleOAuthConfig = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GetGoogleAuthURL hands the client the consent URL for the federated flow.
func GetGoogleAuthURL(c *gin.Context) {
	if googleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google OAuth not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url": googleOAuthConfig.AuthCodeURL("state", oauth2.AccessTypeOnline),
	})
}

// GoogleOAuthCallback exchanges the authorization code, finds or creates
// the user and issues the same session token as the password flow.
func GoogleOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code missing"})
		return
	}
	if googleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google OAuth not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	token, err := googleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Log.WithError(err).Warn("google token exchange failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	client := googleOAuthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user information"})
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode user information"})
		return
	}

	user, err := docs.GetUserByEmail(ctx, info.Email)
	if err == store.ErrNotFound {
		created := newUser(info.Email, info.Name, info.Name, "google")
		created.ProfilePhoto = info.Picture
		id, insertErr := docs.InsertUser(ctx, created)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		finishFederatedLogin(c, id, false)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	finishFederatedLogin(c, user.ID.Hex(), user.RegisterCompleted)
}

func finishFederatedLogin(c *gin.Context, userID string, registerCompleted bool) {
	tokenString, err := issueToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	setSessionCookie(c, tokenString)

	c.JSON(http.StatusOK, gin.H{
		"token":             tokenString,
		"userId":            userID,
		"registerCompleted": registerCompleted,
	})
}
