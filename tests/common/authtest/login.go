//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"clipvault/internal/handler/dto/request"
	"clipvault/internal/pkg/cookie"
	"clipvault/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin logs in through the API and returns the admin cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, c, "Admin token not found in cookies")
	require.NotEmpty(t, c.Value, "Admin token cookie is empty")
	return c
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
