package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmgilman/go/errors"
)

// apiError is the error envelope returned by the purge API.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// wrapHTTPError converts a non-2xx response into a platform error.
func wrapHTTPError(statusCode int, body []byte, endpoint string) error {
	var code errors.ErrorCode
	switch statusCode {
	case http.StatusNotFound:
		code = errors.CodeNotFound
	case http.StatusUnauthorized:
		code = errors.CodeUnauthorized
	case http.StatusForbidden:
		code = errors.CodeForbidden
	case http.StatusConflict:
		code = errors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		code = errors.CodeRateLimit
	default:
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	message := http.StatusText(statusCode)
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	} else if text := strings.TrimSpace(string(body)); text != "" {
		message = text
	}

	err := errors.New(code, "purge API request failed: "+message)
	err = errors.WithContext(err, "status_code", statusCode)
	err = errors.WithContext(err, "endpoint", endpoint)
	if apiErr.Error.Code != "" {
		err = errors.WithContext(err, "api_code", apiErr.Error.Code)
	}
	return err
}

// wrapTransportError converts a failed round trip into a platform error.
func wrapTransportError(err error, endpoint string) error {
	code := errors.CodeNetwork
	if errors.Is(err, context.DeadlineExceeded) {
		code = errors.CodeTimeout
	}
	wrapped := errors.Wrap(err, code, "purge API request failed")
	return errors.WithContext(wrapped, "endpoint", endpoint)
}
