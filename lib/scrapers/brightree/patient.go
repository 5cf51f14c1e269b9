package brightree

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"brightree-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/codes"
)

type PatientResult struct {
	// the portal's internal numeric key assigned to (or kept by) the
	// record
	PatientKey string
	// absolute url of the page the portal redirected to after saving
	URL string
	// set instead of the other fields when the patient id could not be
	// resolved to an internal key
	Message string
}

// GET the page that anchors an operation, translating a first-fetch 404
// into the expired-tokens auth failure
func (c *Client) fetchPage(ctx context.Context, pageURL string) (string, error) {
	body, err := c.request(ctx, http.MethodGet, pageURL, requestOptions{})
	if err != nil {
		return "", expiredTokenHint(err)
	}
	return body, nil
}

func (c *Client) patientPageURL(patientKey string) string {
	return fmt.Sprintf(
		"%s/F1/02873/Nation/Patient/frmPatientPersonal.aspx?PatientKey=%s&Edit=1",
		c.base(), patientKey,
	)
}

// maps the normalized record onto the page's control names. token state
// comes along for the per-page lob key.
func (p Patient) overlay(state pageState) (map[string]string, error) {
	displayDOB, err := formatDateMDY(p.DateOfBirth)
	if err != nil {
		return nil, err
	}

	accountNumber := ""
	if p.PatientID != NewPatientID {
		accountNumber = strconv.Itoa(p.PatientID)
	}

	out := map[string]string{
		"ctl00$ctl00$c$c$txtLastName":      p.LastName,
		"ctl00$ctl00$c$c$txtFirstName":     p.FirstName,
		"ctl00$ctl00$c$c$txtMiddleName":    p.MiddleName,
		"ctl00$ctl00$c$c$txtPreferredName": p.PreferredName,
		"ctl00$ctl00$c$c$txtSuffix":        p.Suffix,
		"ctl00$ctl00$c$c$txtEmailAddress":  p.Email,
		"ctl00$ctl00$c$c$txtAccountNumber": accountNumber,

		"ctl00$ctl00$c$c$hmeDOB":                       p.DateOfBirth,
		"ctl00$ctl00$c$c$hmeDOB$dateInput":             displayDOB,
		"ctl00_ctl00_c_c_hmeDOB_dateInput_ClientState": dateInput(p.DateOfBirth, displayDOB).encode(),

		"ctl00$ctl00$c$c$ssnControl$hmeSSN":             p.SSN,
		"ctl00_ctl00_c_c_ssnControl_hmeSSN_ClientState": maskedInput(p.SSN).encode(),

		"ctl00$ctl00$c$c$hmePhone":                   p.HomePhone,
		"ctl00_ctl00_c_c_hmePhone_ClientState":       maskedInput(p.HomePhone).encode(),
		"ctl00$ctl00$c$c$hmeFax":                     p.Fax,
		"ctl00_ctl00_c_c_hmeFax_ClientState":         maskedInput(p.Fax).encode(),
		"ctl00$ctl00$c$c$hmeMobilePhone":             p.MobilePhone,
		"ctl00_ctl00_c_c_hmeMobilePhone_ClientState": maskedInput(p.MobilePhone).encode(),
	}

	if state.lobKey != "" {
		out["ctl00$ctl00$c$c$ucBillingAddressUpdate$hfLobKey"] = state.lobKey
		out["ctl00$ctl00$c$c$ucAdditionalDeliveryAddress$hfLobKey"] = state.lobKey
		out["ctl00$ctl00$c$c$PrimaryDeliveryAddress$i0$ucPrimaryAddressUpdate$hfLobKey"] = state.lobKey
	}
	return out, nil
}

// CreateOrUpdatePatient replays the personal-info page's save postback
// with the record's fields folded in. A zero PatientID creates a fresh
// record; any other id is resolved to the portal's internal key first,
// and an unresolvable id comes back as a soft Message result without
// anything being posted.
func (c *Client) CreateOrUpdatePatient(ctx context.Context, record Patient) (PatientResult, error) {
	ctx, span := tracer.Start(ctx, "CreateOrUpdatePatient")
	defer span.End()

	record, err := record.normalized()
	if err != nil {
		span.SetStatus(codes.Error, "record validation failed")
		return PatientResult{}, err
	}

	patientKey := "0"
	if record.PatientID != NewPatientID {
		key, ok, err := c.resolvePatientKey(ctx, record.PatientID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "patient key lookup failed")
			return PatientResult{}, err
		}
		if !ok {
			slog.WarnContext(
				ctx, "patient lookup returned no match",
				"patient_id", record.PatientID,
			)
			return PatientResult{
				Message: fmt.Sprintf("unable to retrieve patient with id %d", record.PatientID),
			}, nil
		}
		patientKey = key
	}

	pageURL := c.patientPageURL(patientKey)
	page, err := c.fetchPage(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch patient page")
		return PatientResult{}, err
	}
	doc, err := parseDocument(page)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse patient page html")
		return PatientResult{}, err
	}
	state := extractPageState(doc)

	payload := newFormPayload(patientFormFields())
	payload.apply(state.overlay())
	fields, err := record.overlay(state)
	if err != nil {
		span.SetStatus(codes.Error, "failed to map record onto form")
		return PatientResult{}, err
	}
	payload.apply(fields)

	delta, err := c.postback(ctx, pageURL, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save postback failed")
		return PatientResult{}, err
	}
	redirect, err := c.resolvePostbackRedirect(delta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "postback carried no redirect")
		return PatientResult{}, err
	}

	resultPage, err := c.request(ctx, http.MethodGet, redirect.String(), requestOptions{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch save result page")
		return PatientResult{}, err
	}
	resultDoc, err := parseDocument(resultPage)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse save result html")
		return PatientResult{}, err
	}

	key, ok := inputValueByName(resultDoc, "ptKey")
	if !ok || key == "" {
		// older page revisions only carry the key in the redirect url
		key = redirect.Query().Get("PatientKey")
	}
	return PatientResult{PatientKey: key, URL: redirect.String()}, nil
}

// section legend -> field label -> cleaned field text
type PatientSummary map[string]map[string]string

type SearchResult struct {
	Summary PatientSummary
	// set instead of Summary when the patient id had no internal key
	Message string
}

const fieldMatchThreshold = 0.85

func nearestKey[V any](m map[string]V, want string) (string, bool) {
	best := ""
	var similarity float64
	for name := range m {
		sim := matchr.JaroWinkler(want, name, false)
		if sim > similarity {
			similarity = sim
			best = name
		}
	}
	return best, similarity >= fieldMatchThreshold
}

// Field resolves a section/label pair, tolerating the small legend and
// label drift the portal exhibits between page revisions.
func (s PatientSummary) Field(section, label string) (string, bool) {
	fields, ok := s[section]
	if !ok {
		name, found := nearestKey(s, section)
		if !found {
			return "", false
		}
		fields = s[name]
	}
	if v, ok := fields[label]; ok {
		return v, true
	}
	name, found := nearestKey(fields, label)
	if !found {
		return "", false
	}
	return fields[name], true
}

func parsePatientSummary(doc *goquery.Document) PatientSummary {
	summary := PatientSummary{}
	doc.Find("fieldset").Each(func(_ int, fs *goquery.Selection) {
		legend := htmlutil.CleanSelectionText(fs.Find("legend").First())
		if legend == "" {
			return
		}
		fields := map[string]string{}
		fs.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			label := htmlutil.CleanSelectionText(cells.Eq(0))
			value := htmlutil.CleanSelectionText(cells.Eq(1))
			if label == "" || value == "" {
				return
			}
			fields[strings.TrimSuffix(label, ":")] = value
		})
		if len(fields) > 0 {
			summary[legend] = fields
		}
	})
	return summary
}

// SearchPatient reads the patient's summary page without mutating
// anything, grouped by the page's section legends.
func (c *Client) SearchPatient(ctx context.Context, patientID int) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "SearchPatient")
	defer span.End()

	key, ok, err := c.resolvePatientKey(ctx, patientID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "patient key lookup failed")
		return SearchResult{}, err
	}
	if !ok {
		return SearchResult{
			Message: fmt.Sprintf("unable to retrieve patient with id %d", patientID),
		}, nil
	}

	pageURL := fmt.Sprintf(
		"%s/F1/02873/Nation/Patient/frmPatientSummary.aspx?PatientKey=%s",
		c.base(), key,
	)
	page, err := c.fetchPage(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch summary page")
		return SearchResult{}, err
	}
	doc, err := parseDocument(page)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse summary html")
		return SearchResult{}, err
	}

	return SearchResult{Summary: parsePatientSummary(doc)}, nil
}
