package brightree

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/codes"
)

type lookupItem struct {
	Label         string `json:"label"`
	Value         string `json:"value"`
	AccountNumber string `json:"AccountNumber"`
}

// resolvePatientKey maps the caller-facing account number onto the
// portal's internal numeric patient key via the autocomplete endpoint.
// a miss is reported through `ok`, not an error, so callers can answer
// "vendor has no such record" without unwinding.
func (c *Client) resolvePatientKey(ctx context.Context, patientID int) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "resolvePatientKey")
	defer span.End()

	id := strconv.Itoa(patientID)
	query := url.Values{}
	query.Set("term", id)
	query.Set("limit", "10")
	// cache buster; the one intentionally non-deterministic parameter
	// in the whole protocol
	query.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10))

	target := fmt.Sprintf(
		"%s/F1/02873/Nation/Patient/PatientACLookup.ashx?%s",
		c.base(), query.Encode(),
	)
	body, err := c.request(ctx, http.MethodGet, target, requestOptions{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup request failed")
		return "", false, err
	}

	var items []lookupItem
	err = json.Unmarshal([]byte(body), &items)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse lookup response")
		return "", false, &APIError{Message: fmt.Sprintf(
			"malformed patient lookup response: %s", truncateForDiagnostics(body),
		)}
	}

	// the term search is fuzzy, only an exact account number match
	// counts
	for _, item := range items {
		if item.AccountNumber == id {
			return item.Value, true, nil
		}
	}
	return "", false, nil
}
