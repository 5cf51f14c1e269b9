package brightree

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// a complete snapshot of one page's control tree, never a sparse diff.
// the portal misinterprets postbacks that omit fields it rendered.
type formPayload struct {
	fields map[string]string
}

func newFormPayload(template map[string]string) formPayload {
	fields := make(map[string]string, len(template))
	for k, v := range template {
		fields[k] = v
	}
	return formPayload{fields: fields}
}

// later layers win on key collision
func (p formPayload) apply(overlay map[string]string) {
	for k, v := range overlay {
		p.fields[k] = v
	}
}

func (p formPayload) set(key, value string) {
	p.fields[key] = value
}

// url.Values sorts keys, so identical fields always encode to an
// identical body
func (p formPayload) encode() string {
	values := url.Values{}
	for k, v := range p.fields {
		values.Set(k, v)
	}
	return values.Encode()
}

// submits a payload as a Telerik partial postback and returns the raw
// pipe-delimited delta
func (c *Client) postback(ctx context.Context, pageURL string, payload formPayload) (string, error) {
	headers := map[string]string{
		"X-MicrosoftAjax": "Delta=true",
		"Content-Type":    "application/x-www-form-urlencoded; charset=utf-8",
	}
	return c.request(ctx, http.MethodPost, pageURL, requestOptions{
		headers: headers,
		body:    payload.encode(),
	})
}

// the vendor's locale display form: M/D/YYYY, no zero padding. empty
// input stays empty.
func formatDateMDY(iso string) (string, error) {
	if iso == "" {
		return "", nil
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("date must be in YYYY-MM-DD format: %q", iso)
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year()), nil
}

// combines an ISO date and a 24-hour HH:MM into the toolkit's
// YYYY-MM-DD-HH-MM-SS client-state form
func combineDateTime(isoDate, hhmm string) (string, error) {
	if isoDate == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", isoDate); err != nil {
		return "", fmt.Errorf("date must be in YYYY-MM-DD format: %q", isoDate)
	}
	if hhmm == "" {
		return isoDate + "-00-00-00", nil
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return "", fmt.Errorf("time must be in 24-hour HH:MM format: %q", hhmm)
	}
	return fmt.Sprintf("%s-%02d-%02d-00", isoDate, t.Hour(), t.Minute()), nil
}

// the clock text the time picker displays, e.g. "2:30 PM"
func formatTimeDisplay(hhmm string) (string, error) {
	if hhmm == "" {
		return "", nil
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return "", fmt.Errorf("time must be in 24-hour HH:MM format: %q", hhmm)
	}
	return t.Format("3:04 PM"), nil
}
