package brightree

import (
	"fmt"
	"net/url"
	"strings"
)

// ordinal of the redirect segment inside the delta frame for both save
// postbacks (len|pageRedirect||<encoded url>|)
const redirectSegment = 3

// parsePostbackRedirect digs the post-save redirect path out of a
// partial-postback delta. the frame is pipe-delimited; the interesting
// segment sits at a fixed ordinal, carries stray escape pipes, and is
// percent-encoded. exception text in the decoded segment means the
// server rejected the save outright.
func parsePostbackRedirect(raw string, segment int) (string, error) {
	parts := strings.Split(raw, "|")
	if len(parts) <= segment {
		return "", &APIError{Message: fmt.Sprintf(
			"postback response has %d segments, wanted at least %d: %q",
			len(parts), segment+1, truncateForDiagnostics(raw),
		)}
	}

	encoded := strings.ReplaceAll(parts[segment], "|", "")
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return "", &APIError{Message: fmt.Sprintf(
			"postback redirect segment is not percent-encoded: %q", encoded,
		)}
	}

	if strings.Contains(strings.ToLower(decoded), "exception") {
		// definitive application-level failure, never retryable
		return "", &APIError{Message: fmt.Sprintf("save rejected by server: %s", decoded)}
	}

	return decoded, nil
}

// resolves the server-relative redirect path against the portal origin
func (c *Client) resolvePostbackRedirect(raw string) (*url.URL, error) {
	path, err := parsePostbackRedirect(raw, redirectSegment)
	if err != nil {
		return nil, err
	}
	rel, err := url.Parse(path)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("postback redirect is not a url: %q", path)}
	}
	return c.baseURL.ResolveReference(rel), nil
}

func truncateForDiagnostics(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
