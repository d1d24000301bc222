//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipvault/internal/handler/httperr"
	"clipvault/internal/pkg/errs"
	cvhttptest "clipvault/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		httperr.AbortWithDomainError(c, err, "Something failed")
	})
	return cvhttptest.Perform(t, r, http.MethodGet, "/", nil)
}

func TestAbortWithDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"entry not found", errs.Wrap(errs.ErrEntryNotFound, "get"), http.StatusNotFound, "Video not found"},
		{"preview not found", errs.ErrPreviewNotFound, http.StatusNotFound, "Preview not found"},
		{"invalid entry", errs.Mark(errors.New("price must not be negative"), errs.ErrInvalidEntry), http.StatusUnprocessableEntity, "Invalid video data"},
		{"invalid checkout request", errs.ErrInvalidCheckoutRequest, http.StatusBadRequest, "Invalid checkout request"},
		{"unsupported provider", errs.ErrUnsupportedProvider, http.StatusBadRequest, "Unsupported payment method"},
		{"wallet not configured", errs.ErrWalletNotConfigured, http.StatusConflict, "No wallet"},
		{"invalid return state", errs.ErrInvalidReturnState, http.StatusBadRequest, "Invalid payment return"},
		{"invalid credentials", errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"unmapped", errors.New("connection reset"), http.StatusInternalServerError, "Something failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, tt.err)
			cvhttptest.AssertErrorResponse(t, w, tt.status, tt.msg)
		})
	}
}

func TestAbortWithDomainError_Detail(t *testing.T) {
	t.Run("configuration missing marks the method disabled", func(t *testing.T) {
		w := perform(t, errs.Mark(errors.New("paypal"), errs.ErrConfigurationMissing))
		detail := cvhttptest.AssertErrorDetail(t, w, http.StatusConflict)
		assert.Equal(t, true, detail["disabled"])
	})

	t.Run("upstream failure carries the provider message", func(t *testing.T) {
		err := errs.Mark(errs.WithHint(errors.New("status=402"), "Your card was declined."), errs.ErrUpstreamSessionCreationFailed)
		w := perform(t, err)
		detail := cvhttptest.AssertErrorDetail(t, w, http.StatusBadGateway)
		assert.Equal(t, true, detail["retryable"])
		assert.Equal(t, "Your card was declined.", detail["provider_message"])
	})

	t.Run("upstream failure without a message", func(t *testing.T) {
		w := perform(t, errs.ErrUpstreamSessionCreationFailed)
		detail := cvhttptest.AssertErrorDetail(t, w, http.StatusBadGateway)
		_, ok := detail["provider_message"]
		assert.False(t, ok)
	})
}

func TestAbortWithError_RecordsGinError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cause := errors.New("boom")
	var recorded []*gin.Error
	r.Use(func(c *gin.Context) {
		c.Next()
		recorded = c.Errors
	})
	r.GET("/", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusTeapot, cause, "short and stout", nil)
	})

	w := cvhttptest.Perform(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
	require.Len(t, recorded, 1)
	assert.ErrorIs(t, recorded[0].Err, cause)
	assert.True(t, recorded[0].IsType(gin.ErrorTypePublic))
	assert.IsType(t, httperr.Response{}, recorded[0].Meta)
	assert.Panics(t, func() { httperr.AbortWithError(nil, http.StatusTeapot, nil, "", nil) })
}
