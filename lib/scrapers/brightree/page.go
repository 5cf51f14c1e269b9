package brightree

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func parseDocument(body string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

// WebForms emits the interesting hidden inputs addressed by id for the
// framework tokens and by name for user controls; nothing else in the
// markup is trusted here.
func inputValueByID(doc *goquery.Document, id string) (string, bool) {
	sel := doc.Find(fmt.Sprintf("input[id=%q]", id))
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().Attr("value")
}

func inputValueByName(doc *goquery.Document, name string) (string, bool) {
	sel := doc.Find(fmt.Sprintf("input[name=%q]", name))
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().Attr("value")
}

// ambient postback state lifted from one page load. lives exactly as
// long as it takes to build the follow-up payload.
type pageState struct {
	viewState          string
	viewStateGenerator string
	eventValidation    string
	// per-page line-of-business correlation key, not present on every
	// page
	lobKey string
}

func extractPageState(doc *goquery.Document) pageState {
	viewState, _ := inputValueByID(doc, "__VIEWSTATE")
	viewStateGenerator, _ := inputValueByID(doc, "__VIEWSTATEGENERATOR")
	eventValidation, _ := inputValueByID(doc, "__EVENTVALIDATION")
	lobKey, _ := inputValueByName(doc, "ctl00$ctl00$c$c$ucBillingAddressUpdate$hfLobKey")
	return pageState{
		viewState:          viewState,
		viewStateGenerator: viewStateGenerator,
		eventValidation:    eventValidation,
		lobKey:             lobKey,
	}
}

func (s pageState) overlay() map[string]string {
	return map[string]string{
		"__VIEWSTATE":          s.viewState,
		"__VIEWSTATEGENERATOR": s.viewStateGenerator,
		"__EVENTVALIDATION":    s.eventValidation,
	}
}
