package brightree

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const lookupPath = "/F1/02873/Nation/Patient/PatientACLookup.ashx"

func TestResolvePatientKey(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[
			{"label": "DOE, JANE (42)", "value": "1001", "AccountNumber": "42"},
			{"label": "DOE, JOHN (421)", "value": "1002", "AccountNumber": "421"}
		]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	key, ok, err := client.resolvePatientKey(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1001", key)

	require.Equal(t, []string{"42"}, gotQuery["term"])
	require.Equal(t, []string{"10"}, gotQuery["limit"])
	require.NotEmpty(t, gotQuery["_"])
}

func TestResolvePatientKeyNoExactMatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		// fuzzy matches only, none with the exact account number
		fmt.Fprint(w, `[{"label": "DOE, JOHN (421)", "value": "1002", "AccountNumber": "421"}]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	_, ok, err := client.resolvePatientKey(context.Background(), 42)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolvePatientKeyEmptyResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	_, ok, err := client.resolvePatientKey(context.Background(), 9999)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResolvePatientKeyMalformedResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(lookupPath, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(t, server)
	_, _, err := client.resolvePatientKey(context.Background(), 42)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Message, "malformed patient lookup response")
}
