package admin

import (
	"strings"
	"time"

	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/internal/services/session"
	apperrors "github.com/castpage/catalog-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests without a live admin session. The
// Authorization header is checked first; the session cookie is the
// fallback. Unauthenticated requests never reach the store.
func RequireSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(session.CookieName)
		}

		if token == "" || !deps.SessionService.Validate(token, time.Now()) {
			appErr := apperrors.New(apperrors.ErrCodeAuthenticationRequired, "Authentication required")
			c.AbortWithStatusJSON(apperrors.GetHTTPCode(appErr), types.ErrorResponse{
				Error: appErr.Message,
				Code:  string(appErr.Code),
			})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
