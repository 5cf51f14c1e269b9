package brightree

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestClientErrorsAreAuthErrors(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 499} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			client := testClient(t, server)
			_, err := client.request(context.Background(), http.MethodGet, server.URL+"/page", requestOptions{})
			require.Error(t, err)
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			require.Equal(t, status, authErr.StatusCode)
		})
	}
}

func TestRequestServerErrorsAreAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server)
	_, err := client.request(context.Background(), http.MethodGet, server.URL+"/page", requestOptions{})
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	var authErr *AuthError
	require.False(t, errors.As(err, &authErr))
}

func TestRequestDisguisedLoginPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<!DOCTYPE html>\n<html><head><title>Brightree Login</title></head></html>")
	}))
	defer server.Close()

	client := testClient(t, server)
	_, err := client.request(context.Background(), http.MethodGet, server.URL+"/page", requestOptions{})
	require.Error(t, err)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestRequestAccessDeniedPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<!DOCTYPE html>\n<html><body>Access is denied.</body></html>")
	}))
	defer server.Close()

	client := testClient(t, server)
	_, err := client.request(context.Background(), http.MethodGet, server.URL+"/page", requestOptions{})
	require.Error(t, err)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestRequestPlainSuccessBodyPassesThrough(t *testing.T) {
	// login markers outside a doctype html document are just content
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"note": "Brightree Login is mentioned here"}`)
	}))
	defer server.Close()

	client := testClient(t, server)
	body, err := client.request(context.Background(), http.MethodGet, server.URL+"/data", requestOptions{})
	require.NoError(t, err)
	require.Contains(t, body, "Brightree Login")
}

func TestExpiredTokenHint(t *testing.T) {
	hinted := expiredTokenHint(&AuthError{StatusCode: http.StatusNotFound, Reason: "404 Not Found"})
	var authErr *AuthError
	require.ErrorAs(t, hinted, &authErr)
	require.Equal(t, "session tokens expired", authErr.Reason)

	other := &AuthError{StatusCode: http.StatusForbidden, Reason: "403 Forbidden"}
	require.Equal(t, error(other), expiredTokenHint(other))

	apiErr := &APIError{StatusCode: 500, Message: "oops"}
	require.Equal(t, error(apiErr), expiredTokenHint(apiErr))
}

func TestErrorStrings(t *testing.T) {
	require.Equal(
		t,
		"brightree: authentication failed: 401 - Unauthorized",
		(&AuthError{StatusCode: 401, Reason: "Unauthorized"}).Error(),
	)
	require.Equal(
		t,
		"brightree: too many redirects (max: 5)",
		(&APIError{Message: "too many redirects (max: 5)"}).Error(),
	)
	require.Equal(
		t,
		"brightree: 500 - boom",
		(&APIError{StatusCode: 500, Message: "boom"}).Error(),
	)
}
