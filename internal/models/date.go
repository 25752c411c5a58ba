package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02T15:04:05"
)

// Date is a wrapper around gorm.io/datatypes.Date that serializes as
// yyyy-MM-dd on the wire instead of a full RFC 3339 timestamp.
type Date datatypes.Date

// NewDate builds a Date truncated to its day.
func NewDate(t time.Time) Date {
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// Time converts the Date back to a time.Time.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Value promotes the underlying Date's Value method
func (d Date) Value() (driver.Value, error) {
	return datatypes.Date(d).Value()
}

// Scan promotes the underlying Date's Scan method
func (d *Date) Scan(value interface{}) error {
	return (*datatypes.Date)(d).Scan(value)
}

// GormDataType promotes the underlying Date's data type
func (d Date) GormDataType() string {
	return datatypes.Date(d).GormDataType()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateFormat) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return fmt.Errorf("Date: expected yyyy-MM-dd, got %q: %w", s, err)
	}

	*d = Date(t)
	return nil
}

// DateTime is a second-resolution timestamp that serializes as
// yyyy-MM-ddTHH:mm:ss and also accepts RFC 3339 on input.
type DateTime time.Time

// NewDateTime builds a DateTime truncated to the second.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.Truncate(time.Second))
}

// Time converts the DateTime back to a time.Time.
func (dt DateTime) Time() time.Time {
	return time.Time(dt)
}

// Value implements the driver.Valuer interface.
func (dt DateTime) Value() (driver.Value, error) {
	return time.Time(dt), nil
}

// Scan implements the sql.Scanner interface.
func (dt *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*dt = DateTime(v)
		return nil
	case []byte:
		return dt.scanString(string(v))
	case string:
		return dt.scanString(v)
	case nil:
		return nil
	}
	return fmt.Errorf("DateTime: unsupported scan type %T", value)
}

func (dt *DateTime) scanString(s string) error {
	for _, layout := range []string{time.RFC3339, dateTimeFormat, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*dt = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("DateTime: cannot scan %q", s)
}

// GormDataType declares the column type used by the schema migrator.
func (dt DateTime) GormDataType() string {
	return "datetime"
}

// MarshalJSON implements the json.Marshaler interface.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(dt).Format(dateTimeFormat) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	for _, layout := range []string{dateTimeFormat, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*dt = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("DateTime: expected yyyy-MM-ddTHH:mm:ss, got %q", s)
}
