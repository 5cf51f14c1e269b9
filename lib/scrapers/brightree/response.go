package brightree

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// the session behind the cookie string is invalid or expired; the
// caller has to re-acquire tokens before retrying anything
type AuthError struct {
	StatusCode int
	Reason     string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("brightree: authentication failed: %d - %s", e.StatusCode, e.Reason)
}

// any non-auth failure reported by the portal: bad status, malformed
// redirect framing, or exception text inside a postback delta
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("brightree: %s", e.Message)
	}
	return fmt.Sprintf("brightree: %d - %s", e.StatusCode, e.Message)
}

// the portal sometimes answers an expired session with a 200 carrying
// the login page instead of a 4xx
func isDisguisedLogin(body string) bool {
	if !strings.Contains(body, "<!DOCTYPE html>") {
		return false
	}
	return strings.Contains(body, "Access is denied") ||
		strings.Contains(body, "Brightree Login")
}

func interpretResponse(res *resty.Response) (string, error) {
	body := res.String()

	if res.IsSuccess() {
		if isDisguisedLogin(body) {
			return "", &AuthError{
				StatusCode: http.StatusUnauthorized,
				Reason:     "Unauthorized",
			}
		}
		return body, nil
	}

	status := res.StatusCode()
	if status >= 400 && status < 500 {
		// the portal reports session problems as generic client errors
		return "", &AuthError{StatusCode: status, Reason: res.Status()}
	}
	return "", &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("%s - %v", res.Status(), res.Header()),
	}
}

// a hard 404 on the page that anchors an operation means the tokens
// behind the cookie expired, not that the page is gone
func expiredTokenHint(err error) error {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.StatusCode == http.StatusNotFound {
		return &AuthError{
			StatusCode: http.StatusNotFound,
			Reason:     "session tokens expired",
		}
	}
	return err
}
