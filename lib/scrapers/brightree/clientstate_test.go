package brightree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// the portal compares these blobs byte for byte, so the expected
// strings below are copied verbatim from captured browser postbacks
func TestButtonStateEncoding(t *testing.T) {
	require.Equal(
		t,
		`{"text":"","value":"","checked":false,"target":"","navigateUrl":"","commandName":"Save","commandArgument":"","autoPostBack":true,"selectedToggleStateIndex":0,"validationGroup":null,"readOnly":false,"primary":false,"enabled":true}`,
		button("", "Save", true, true).encode(),
	)
	require.Equal(
		t,
		`{"text":"New Sales Order","value":"","checked":false,"target":"","navigateUrl":"","commandName":"","commandArgument":"","autoPostBack":true,"selectedToggleStateIndex":0,"validationGroup":null,"readOnly":false,"primary":false,"enabled":false}`,
		button("New Sales Order", "", true, false).encode(),
	)
}

func TestMaskedInputEncoding(t *testing.T) {
	require.Equal(
		t,
		`{"enabled":true,"emptyMessage":"","validationText":"","valueAsString":"(___) ___-____","valueWithPromptAndLiterals":"(___) ___-____","lastSetTextBoxValue":"(___) ___-____"}`,
		maskedInput(PhoneMask).encode(),
	)
	require.Equal(
		t,
		`{"enabled":true,"emptyMessage":"","validationText":"","valueAsString":"_____-____","valueWithPromptAndLiterals":"_____-____","lastSetTextBoxValue":"_____-____"}`,
		maskedInput(PostalMask).encode(),
	)
	require.Equal(
		t,
		`{"enabled":true,"emptyMessage":"","validationText":"1234567890","valueAsString":"(123) 456-7890","valueWithPromptAndLiterals":"(123) 456-7890","lastSetTextBoxValue":"(123) 456-7890"}`,
		maskedInput("(123) 456-7890").encode(),
	)
}

func TestDateInputEncoding(t *testing.T) {
	require.Equal(
		t,
		`{"enabled":true,"emptyMessage":"","validationText":"","valueAsString":"","minDateStr":"1753-01-02-00-00-00","maxDateStr":"9999-12-31-00-00-00","lastSetTextBoxValue":""}`,
		dateInput("", "").encode(),
	)
	require.Equal(
		t,
		`{"enabled":true,"emptyMessage":"","validationText":"1990-06-15-00-00-00","valueAsString":"1990-06-15-00-00-00","minDateStr":"1753-01-02-00-00-00","maxDateStr":"9999-12-31-00-00-00","lastSetTextBoxValue":"6/15/1990"}`,
		dateInput("1990-06-15", "6/15/1990").encode(),
	)
}

func TestDatePickerEncoding(t *testing.T) {
	require.Equal(
		t,
		`{"minDateStr":"1753-01-02-00-00-00","maxDateStr":"9999-12-31-00-00-00"}`,
		datePicker().encode(),
	)
}

func TestTabStripEncoding(t *testing.T) {
	require.Equal(
		t,
		`{"selectedIndexes":["1"],"logEntries":[],"scrollState":{}}`,
		tabStrip("1").encode(),
	)
}

func TestPanelBarEncoding(t *testing.T) {
	require.Equal(
		t,
		`{"expandedItems":["0"],"logEntries":[],"selectedItems":["0"]}`,
		panelBar("0").encode(),
	)
}
