package cookie

import (
	"net/http"
	"time"

	"clipvault/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AdminTokenCookieName = "admin_token"
	adminCookiePath      = "/api/admin"
)

func SetAdminToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AdminTokenCookieName, token, int(expiry.Seconds()), adminCookiePath, cfg.Domain, cfg.Secure, true)
}

func ClearAdminToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AdminTokenCookieName, "", -1, adminCookiePath, cfg.Domain, cfg.Secure, true)
}

func GetAdminToken(c *gin.Context) string {
	token, _ := c.Cookie(AdminTokenCookieName)
	return token
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
