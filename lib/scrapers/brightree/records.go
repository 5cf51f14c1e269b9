package brightree

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// literal prompt masks the portal renders for empty inputs; sending
// anything else for an absent value trips server-side validation
const PhoneMask = "(___) ___-____"
const SSNMask = "___-__-____"
const PostalMask = "_____-____"

// PatientID value marking a record that has no vendor-side identity yet
const NewPatientID = 0

// caller-facing patient record. zero PatientID creates, anything else
// updates the patient whose account number matches.
type Patient struct {
	PatientID     int
	FirstName     string
	LastName      string
	MiddleName    string
	PreferredName string
	Suffix        string
	Email         string
	// YYYY-MM-DD
	DateOfBirth string
	SSN         string
	HomePhone   string
	MobilePhone string
	Fax         string
}

type SalesOrder struct {
	PatientID int
	// vendor order classification, defaults to "S" (sale)
	OrderType  string
	ActualDate string // YYYY-MM-DD
	// delivery scheduling, date plus 24-hour clock
	ScheduledDate string // YYYY-MM-DD
	ScheduledTime string // HH:MM
	PONumber      string
	Note          string
}

var nonDigits = regexp.MustCompile(`\D`)
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// NormalizePhone renders a US phone number in the portal's
// (XXX) XXX-XXXX shape. empty or already-masked input maps to the
// prompt mask; a leading country 1 on an 11-digit number is dropped;
// any other digit count is rejected rather than coerced.
func NormalizePhone(v string) (string, error) {
	if v == "" || v == PhoneMask {
		return PhoneMask, nil
	}
	digits := nonDigits.ReplaceAllString(v, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", fmt.Errorf("phone number must be a valid US number (10 digits): %q", v)
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:]), nil
}

func NormalizeSSN(v string) (string, error) {
	if v == "" || v == SSNMask {
		return SSNMask, nil
	}
	digits := nonDigits.ReplaceAllString(v, "")
	if len(digits) != 9 {
		return "", fmt.Errorf("SSN must be 9 digits: %q", v)
	}
	return fmt.Sprintf("%s-%s-%s", digits[:3], digits[3:5], digits[5:]), nil
}

func validateEmail(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	if !emailPattern.MatchString(v) {
		return "", fmt.Errorf("invalid email format: %q", v)
	}
	return v, nil
}

func validateISODate(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return "", fmt.Errorf("date must be in YYYY-MM-DD format: %q", v)
	}
	return v, nil
}

// normalized returns a copy with every formatted field rewritten into
// the portal's exact shape; the original record is left alone
func (p Patient) normalized() (Patient, error) {
	var err error
	if p.HomePhone, err = NormalizePhone(p.HomePhone); err != nil {
		return Patient{}, err
	}
	if p.MobilePhone, err = NormalizePhone(p.MobilePhone); err != nil {
		return Patient{}, err
	}
	if p.Fax, err = NormalizePhone(p.Fax); err != nil {
		return Patient{}, err
	}
	if p.SSN, err = NormalizeSSN(p.SSN); err != nil {
		return Patient{}, err
	}
	if p.Email, err = validateEmail(p.Email); err != nil {
		return Patient{}, err
	}
	if p.DateOfBirth, err = validateISODate(p.DateOfBirth); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (o SalesOrder) normalized() (SalesOrder, error) {
	var err error
	if o.OrderType == "" {
		o.OrderType = "S"
	}
	if o.ActualDate, err = validateISODate(o.ActualDate); err != nil {
		return SalesOrder{}, err
	}
	if o.ScheduledDate, err = validateISODate(o.ScheduledDate); err != nil {
		return SalesOrder{}, err
	}
	if o.ScheduledTime != "" {
		if _, err := time.Parse("15:04", o.ScheduledTime); err != nil {
			return SalesOrder{}, fmt.Errorf(
				"time must be in 24-hour HH:MM format: %q", o.ScheduledTime,
			)
		}
	}
	if strings.TrimSpace(o.ScheduledTime) != o.ScheduledTime {
		return SalesOrder{}, fmt.Errorf("time has surrounding whitespace: %q", o.ScheduledTime)
	}
	return o, nil
}
