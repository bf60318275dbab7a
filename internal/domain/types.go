package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date stored as a TEXT column and serialized as
// "YYYY-MM-DD" in JSON. Use a *Date field for nullable dates.
type Date struct {
	time.Time
}

// Precision values recorded alongside an album release date.
const (
	PrecisionYear  = "year"
	PrecisionMonth = "month"
	PrecisionDay   = "day"
)

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date literal: %s", data)
	}
	t, err := time.Parse(dateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) parse(s string) error {
	// sqlite may hand back a full timestamp depending on how the
	// column was written.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseReleaseDate normalizes a partial release date string. A 4-char
// input is a bare year, 7 chars is year-month, 10 chars is a full
// date. Anything else, including an empty string or a string that does
// not parse as the implied layout, yields nil rather than an error:
// the record is stored without a release date.
func ParseReleaseDate(s string) *Date {
	var t time.Time
	var err error

	switch len(s) {
	case 4:
		t, err = time.Parse("2006", s)
	case 7:
		t, err = time.Parse("2006-01", s)
	case 10:
		t, err = time.Parse(dateLayout, s)
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return &Date{t}
}
