package brightree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html><body><form>
<input type="hidden" id="__VIEWSTATE" name="__VIEWSTATE" value="vs-blob" />
<input type="hidden" id="__VIEWSTATEGENERATOR" name="__VIEWSTATEGENERATOR" value="CA0B0334" />
<input type="hidden" id="__EVENTVALIDATION" name="__EVENTVALIDATION" value="ev-blob" />
<input type="hidden" name="ctl00$ctl00$c$c$ucBillingAddressUpdate$hfLobKey"
       id="ctl00_ctl00_c_c_ucBillingAddressUpdate_hfLobKey" value="lob-123" />
</form></body></html>`

func TestExtractPageState(t *testing.T) {
	doc, err := parseDocument(samplePage)
	require.NoError(t, err)

	got := extractPageState(doc)
	want := pageState{
		viewState:          "vs-blob",
		viewStateGenerator: "CA0B0334",
		eventValidation:    "ev-blob",
		lobKey:             "lob-123",
	}
	diff := cmp.Diff(want, got, cmp.AllowUnexported(pageState{}))
	require.Empty(t, diff)
}

func TestExtractPageStateMissingInputs(t *testing.T) {
	doc, err := parseDocument("<!DOCTYPE html><html><body></body></html>")
	require.NoError(t, err)
	require.Equal(t, pageState{}, extractPageState(doc))
}

func TestPageStateOverlay(t *testing.T) {
	state := pageState{
		viewState:          "vs",
		viewStateGenerator: "gen",
		eventValidation:    "ev",
		lobKey:             "lob",
	}
	got := state.overlay()
	require.Equal(t, map[string]string{
		"__VIEWSTATE":          "vs",
		"__VIEWSTATEGENERATOR": "gen",
		"__EVENTVALIDATION":    "ev",
	}, got)
}

func TestInputValueByID(t *testing.T) {
	doc, err := parseDocument(samplePage)
	require.NoError(t, err)

	value, ok := inputValueByID(doc, "__VIEWSTATE")
	require.True(t, ok)
	require.Equal(t, "vs-blob", value)

	_, ok = inputValueByID(doc, "missing")
	require.False(t, ok)
}
