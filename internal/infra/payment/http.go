// Package payment holds the hosted checkout clients. Each one only creates a
// session; nothing here sees card data or moves money.
package payment

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"clipvault/internal/pkg/errs"
)

const (
	defaultTimeout  = 30 * time.Second
	maxErrorBodyLen = 4 << 10
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// upstreamError turns a non-2xx answer into ErrUpstreamSessionCreationFailed
// carrying the provider's own message as a hint when one can be found.
func upstreamError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	msg := providerMessage(body)

	err := errs.Newf("%s session creation failed: status=%d", provider, resp.StatusCode)
	if msg != "" {
		err = errs.WithHint(err, msg)
	}
	return errs.Mark(err, errs.ErrUpstreamSessionCreationFailed)
}

func transportError(provider string, err error) error {
	return errs.Mark(errs.Wrapf(err, "%s request", provider), errs.ErrUpstreamSessionCreationFailed)
}

// providerMessage understands the error shapes of the providers we talk to:
// {"error":{"message"}}, {"message"}, {"error_description"} and {"error":"..."}.
func providerMessage(body []byte) string {
	var shape struct {
		Error            json.RawMessage `json:"error"`
		Message          string          `json:"message"`
		ErrorDescription string          `json:"error_description"`
	}
	if err := json.Unmarshal(body, &shape); err != nil {
		return strings.TrimSpace(string(body))
	}

	if len(shape.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(shape.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
		var flat string
		if json.Unmarshal(shape.Error, &flat) == nil && flat != "" {
			if shape.ErrorDescription != "" {
				return shape.ErrorDescription
			}
			return flat
		}
	}
	if shape.Message != "" {
		return shape.Message
	}
	return shape.ErrorDescription
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
