package handlers

import (
	"net/http"

	"espora/middleware"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 60 * 60 * 24 * 7 // one week

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

// SetSession stores a token issued elsewhere (the federated flow) as the
// session cookie.
func SetSession(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token no proporcionado"})
		return
	}

	setSessionCookie(c, req.Token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie. The token itself simply expires.
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
