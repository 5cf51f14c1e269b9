package brightree

import (
	"encoding/json"
	"strings"
)

// The Telerik control toolkit mirrors every widget's client-side state
// into a hidden field holding a JSON blob. The server compares these
// against its own rendering, so the encodings below have to reproduce
// the portal's output byte for byte; each type has exactly one encoder
// to keep postback payloads deterministic.

func encodeState(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		// every state type below marshals cleanly
		panic(err)
	}
	return string(raw)
}

type buttonState struct {
	Text                     string  `json:"text"`
	Value                    string  `json:"value"`
	Checked                  bool    `json:"checked"`
	Target                   string  `json:"target"`
	NavigateUrl              string  `json:"navigateUrl"`
	CommandName              string  `json:"commandName"`
	CommandArgument          string  `json:"commandArgument"`
	AutoPostBack             bool    `json:"autoPostBack"`
	SelectedToggleStateIndex int     `json:"selectedToggleStateIndex"`
	ValidationGroup          *string `json:"validationGroup"`
	ReadOnly                 bool    `json:"readOnly"`
	Primary                  bool    `json:"primary"`
	Enabled                  bool    `json:"enabled"`
}

func (s buttonState) encode() string { return encodeState(s) }

func button(text, commandName string, autoPostBack, enabled bool) buttonState {
	return buttonState{
		Text:         text,
		CommandName:  commandName,
		AutoPostBack: autoPostBack,
		Enabled:      enabled,
	}
}

type maskedInputState struct {
	Enabled                    bool   `json:"enabled"`
	EmptyMessage               string `json:"emptyMessage"`
	ValidationText             string `json:"validationText"`
	ValueAsString              string `json:"valueAsString"`
	ValueWithPromptAndLiterals string `json:"valueWithPromptAndLiterals"`
	LastSetTextBoxValue        string `json:"lastSetTextBoxValue"`
}

func (s maskedInputState) encode() string { return encodeState(s) }

// `value` is the already-masked phone/SSN/postal text. prompt masks
// (underscores still present) validate as empty; filled values validate
// as their bare digits.
func maskedInput(value string) maskedInputState {
	validation := ""
	if !strings.ContainsRune(value, '_') {
		validation = nonDigits.ReplaceAllString(value, "")
	}
	return maskedInputState{
		Enabled:                    true,
		ValidationText:             validation,
		ValueAsString:              value,
		ValueWithPromptAndLiterals: value,
		LastSetTextBoxValue:        value,
	}
}

type textInputState struct {
	Enabled             bool   `json:"enabled"`
	EmptyMessage        string `json:"emptyMessage"`
	ValidationText      string `json:"validationText"`
	ValueAsString       string `json:"valueAsString"`
	LastSetTextBoxValue string `json:"lastSetTextBoxValue"`
}

func (s textInputState) encode() string { return encodeState(s) }

func textInput(value string) textInputState {
	return textInputState{
		Enabled:             true,
		ValidationText:      value,
		ValueAsString:       value,
		LastSetTextBoxValue: value,
	}
}

// date bounds the portal renders on every date picker
const minDateStr = "1753-01-02-00-00-00"
const maxDateStr = "9999-12-31-00-00-00"

type dateInputState struct {
	Enabled             bool   `json:"enabled"`
	EmptyMessage        string `json:"emptyMessage"`
	ValidationText      string `json:"validationText"`
	ValueAsString       string `json:"valueAsString"`
	MinDateStr          string `json:"minDateStr"`
	MaxDateStr          string `json:"maxDateStr"`
	LastSetTextBoxValue string `json:"lastSetTextBoxValue"`
}

func (s dateInputState) encode() string { return encodeState(s) }

// `iso` is YYYY-MM-DD or empty, `display` the M/D/YYYY text shown in
// the input box
func dateInput(iso, display string) dateInputState {
	value := ""
	if iso != "" {
		value = iso + "-00-00-00"
	}
	return dateInputState{
		Enabled:             true,
		ValidationText:      value,
		ValueAsString:       value,
		MinDateStr:          minDateStr,
		MaxDateStr:          maxDateStr,
		LastSetTextBoxValue: display,
	}
}

type datePickerState struct {
	MinDateStr string `json:"minDateStr"`
	MaxDateStr string `json:"maxDateStr"`
}

func (s datePickerState) encode() string { return encodeState(s) }

func datePicker() datePickerState {
	return datePickerState{MinDateStr: minDateStr, MaxDateStr: maxDateStr}
}

type timeInputState struct {
	Enabled             bool   `json:"enabled"`
	EmptyMessage        string `json:"emptyMessage"`
	ValidationText      string `json:"validationText"`
	ValueAsString       string `json:"valueAsString"`
	LastSetTextBoxValue string `json:"lastSetTextBoxValue"`
}

func (s timeInputState) encode() string { return encodeState(s) }

// `value` is the combined YYYY-MM-DD-HH-MM-SS form, `display` the
// clock text shown in the input box
func timeInput(value, display string) timeInputState {
	return timeInputState{
		Enabled:             true,
		ValidationText:      value,
		ValueAsString:       value,
		LastSetTextBoxValue: display,
	}
}

type numericInputState struct {
	Enabled             bool   `json:"enabled"`
	EmptyMessage        string `json:"emptyMessage"`
	ValidationText      string `json:"validationText"`
	ValueAsString       string `json:"valueAsString"`
	MinValue            int    `json:"minValue"`
	MaxValue            int    `json:"maxValue"`
	LastSetTextBoxValue string `json:"lastSetTextBoxValue"`
}

func (s numericInputState) encode() string { return encodeState(s) }

type tabStripState struct {
	SelectedIndexes []string `json:"selectedIndexes"`
	LogEntries      []any    `json:"logEntries"`
	ScrollState     struct{} `json:"scrollState"`
}

func (s tabStripState) encode() string { return encodeState(s) }

func tabStrip(selected ...string) tabStripState {
	return tabStripState{
		SelectedIndexes: selected,
		LogEntries:      []any{},
	}
}

type panelBarState struct {
	ExpandedItems []string `json:"expandedItems"`
	LogEntries    []any    `json:"logEntries"`
	SelectedItems []string `json:"selectedItems"`
}

func (s panelBarState) encode() string { return encodeState(s) }

func panelBar(items ...string) panelBarState {
	return panelBarState{
		ExpandedItems: items,
		LogEntries:    []any{},
		SelectedItems: items,
	}
}
