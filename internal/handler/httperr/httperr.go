package httperr

import (
	"net/http"

	"clipvault/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type domainMapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first sentinel the error carries wins.
var domainMappings = []domainMapping{
	{errs.ErrEntryNotFound, http.StatusNotFound, "Video not found"},
	{errs.ErrPreviewNotFound, http.StatusNotFound, "Preview not found"},
	{errs.ErrInvalidEntry, http.StatusUnprocessableEntity, "Invalid video data"},
	{errs.ErrInvalidCheckoutRequest, http.StatusBadRequest, "Invalid checkout request"},
	{errs.ErrUnsupportedProvider, http.StatusBadRequest, "Unsupported payment method"},
	{errs.ErrConfigurationMissing, http.StatusConflict, "Payment method is not available"},
	{errs.ErrWalletNotConfigured, http.StatusConflict, "No wallet is configured for this currency"},
	{errs.ErrUpstreamSessionCreationFailed, http.StatusBadGateway, "Payment provider could not start the checkout"},
	{errs.ErrInvalidReturnState, http.StatusBadRequest, "Invalid payment return"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
}

// AbortWithDomainError maps a usecase error to its status. Anything unmapped
// is a 500 with fallback as the message.
func AbortWithDomainError(c *gin.Context, err error, fallback string) {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.msg, detailFor(m.target, err))
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func detailFor(target, err error) any {
	switch target {
	case errs.ErrConfigurationMissing:
		return gin.H{"disabled": true}
	case errs.ErrUpstreamSessionCreationFailed:
		d := gin.H{"retryable": true}
		if hint := errs.Hint(err); hint != "" {
			d["provider_message"] = hint
		}
		return d
	default:
		return nil
	}
}
