package admin

import (
	"net/http"
	"time"

	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/internal/services/session"
	"github.com/gin-gonic/gin"
)

// Login authenticates the admin user and starts a session
// @Summary Admin login
// @Description Authenticate with the admin credentials; sets the session cookie and returns the token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body types.LoginRequest true "Credentials"
// @Success 200 {object} types.LoginResponse
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/admin/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Username and password are required"})
			return
		}

		token, err := deps.SessionService.Login(req.Username, req.Password, time.Now())
		if err != nil {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid credentials"})
			return
		}

		setSessionCookie(c, token, int(session.Duration.Seconds()), deps.SecureCookies)
		c.JSON(http.StatusOK, types.LoginResponse{Success: true, Token: token})
	}
}

// Logout ends the admin session
// @Summary Admin logout
// @Description Clear the session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/v1/admin/logout [post]
func Logout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, "", -1, deps.SecureCookies)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func setSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", secure, true)
}
