package brightree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDateMDY(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "2024-03-05", want: "3/5/2024"},
		{input: "1990-12-31", want: "12/31/1990"},
		{input: "2024-3-5", wantErr: true},
		{input: "03/05/2024", wantErr: true},
	}
	for _, c := range cases {
		got, err := formatDateMDY(c.input)
		if c.wantErr {
			require.Error(t, err, c.input)
			continue
		}
		require.NoError(t, err, c.input)
		require.Equal(t, c.want, got)
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := combineDateTime("2024-03-05", "14:30")
	require.NoError(t, err)
	require.Equal(t, "2024-03-05-14-30-00", got)

	got, err = combineDateTime("2024-03-05", "")
	require.NoError(t, err)
	require.Equal(t, "2024-03-05-00-00-00", got)

	got, err = combineDateTime("", "14:30")
	require.NoError(t, err)
	require.Equal(t, "", got)

	_, err = combineDateTime("2024-03-05", "2:30 PM")
	require.Error(t, err)
}

func TestFormatTimeDisplay(t *testing.T) {
	got, err := formatTimeDisplay("14:30")
	require.NoError(t, err)
	require.Equal(t, "2:30 PM", got)

	got, err = formatTimeDisplay("09:05")
	require.NoError(t, err)
	require.Equal(t, "9:05 AM", got)

	got, err = formatTimeDisplay("")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestFormPayloadOverlayPrecedence(t *testing.T) {
	payload := newFormPayload(map[string]string{
		"a": "fixture",
		"b": "fixture",
		"c": "fixture",
	})
	payload.apply(map[string]string{"b": "tokens"})
	payload.apply(map[string]string{"b": "record", "c": "record"})

	require.Equal(t, "fixture", payload.fields["a"])
	require.Equal(t, "record", payload.fields["b"])
	require.Equal(t, "record", payload.fields["c"])
}

func TestFormPayloadTemplateIsolation(t *testing.T) {
	template := map[string]string{"a": "fixture"}
	payload := newFormPayload(template)
	payload.set("a", "changed")
	require.Equal(t, "fixture", template["a"])
}

func TestFormPayloadEncodeDeterministic(t *testing.T) {
	build := func() formPayload {
		p := newFormPayload(map[string]string{
			"zeta":  "1",
			"alpha": "2",
			"mid":   "a value with spaces & symbols",
		})
		return p
	}
	first := build().encode()
	for i := 0; i < 20; i++ {
		require.Equal(t, first, build().encode())
	}
	// keys come out sorted regardless of insertion order
	require.Equal(t, "alpha=2&mid=a+value+with+spaces+%26+symbols&zeta=1", first)
}

// the same page snapshot plus the same record must always produce a
// byte-identical body, across the full patient control tree
func TestPatientPayloadEncodeDeterministic(t *testing.T) {
	state := pageState{
		viewState:          "vs-blob",
		viewStateGenerator: "CA0B0334",
		eventValidation:    "ev-blob",
		lobKey:             "lob-abc",
	}
	record, err := Patient{
		PatientID:   42,
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		DateOfBirth: "1990-06-15",
		SSN:         "123456789",
		HomePhone:   "1234567890",
	}.normalized()
	require.NoError(t, err)

	build := func() string {
		payload := newFormPayload(patientFormFields())
		payload.apply(state.overlay())
		fields, err := record.overlay(state)
		require.NoError(t, err)
		payload.apply(fields)
		return payload.encode()
	}

	first := build()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, build())
	}
}
