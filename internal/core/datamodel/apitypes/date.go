package apitypes

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// accepted inbound datetime layouts; Asaas emits both the T-separated and
// the space-separated form depending on the endpoint.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateTimeLayout,
}

// Date is a calendar day on the wire, rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate normalizes an already-typed time to a Date. Applying it to a
// Date's own Time yields an equal Date, so construction is idempotent.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s, ok := unquote(s)
	if !ok {
		return fmt.Errorf("invalid date %s: not a JSON string", string(data))
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateTime is a point in time on the wire, parsed from ISO-8601.
type DateTime struct {
	time.Time
}

// NewDateTime wraps an already-typed time unchanged.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime parses an ISO-8601 datetime in any of the layouts the API
// emits. Anything else is an error, never a zero value.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid datetime %q", s)
}

func (d DateTime) String() string {
	return d.Format(dateTimeLayout)
}

func (d DateTime) IsZero() bool {
	return d.Time.IsZero()
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s, ok := unquote(s)
	if !ok {
		return fmt.Errorf("invalid datetime %s: not a JSON string", string(data))
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func unquote(s string) (string, bool) {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return "", false
	}
	return s[1 : len(s)-1], true
}
