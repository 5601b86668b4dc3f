package cli

import (
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
)

// wrapCLIError wraps errors from vercel CLI execution.
func wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	// Default to execution failed
	code := errors.CodeExecutionFailed
	if result != nil {
		code = errorCodeFromResult(result)
	}

	wrappedErr := errors.Wrap(err, code, message)

	// Include stderr in error details if available
	if result != nil && result.Stderr != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", result.Stderr)
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	return wrappedErr
}

// errorCodeFromResult maps vercel CLI output to an error code.
func errorCodeFromResult(result *exec.Result) errors.ErrorCode {
	stderr := strings.ToLower(result.Stderr)
	switch {
	case contains(stderr, "not authorized", "no existing credentials", "token is not valid", "unauthorized"):
		return errors.CodeUnauthorized
	case contains(stderr, "forbidden", "permission denied", "you do not have access"):
		return errors.CodeForbidden
	case contains(stderr, "not found", "could not find"):
		return errors.CodeNotFound
	case contains(stderr, "rate limit", "too many requests"):
		return errors.CodeRateLimit
	case contains(stderr, "invalid", "missing required"):
		return errors.CodeInvalidInput
	case contains(stderr, "network", "econnrefused", "etimedout", "socket hang up"):
		return errors.CodeNetwork
	}
	return errors.CodeExecutionFailed
}

// contains checks if any of the patterns exist in the lowercased text.
func contains(text string, patterns ...string) bool {
	for _, pattern := range patterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "vercel CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'vercel login' or provide a token")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
