//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"clipvault/internal/handler/middleware"
	"clipvault/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/receipt", middleware.NoStore(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.Perform(t, r, http.MethodGet, "/receipt", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
