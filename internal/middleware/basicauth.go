package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bemviver/clinic-scheduler/internal/config"
)

const basicRealm = `Basic realm="bemviver"`

// BasicAuthMiddleware protege a superfície admin com as credenciais da
// config. Comparação em tempo constante.
func BasicAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Basic ") {
			unauthorized(c)
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
		if err != nil {
			unauthorized(c)
			return
		}

		user, pass, ok := strings.Cut(string(decoded), ":")
		if !ok {
			unauthorized(c)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUser)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.AdminPass)) == 1
		if !userOK || !passOK {
			unauthorized(c)
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", basicRealm)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
