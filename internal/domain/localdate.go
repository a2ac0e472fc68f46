package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

const localDateLayout = "2006-01-02"

// LocalDate is a calendar date without a time-of-day component.
// It serializes to JSON as "YYYY-MM-DD" and stores as a date column.
// Use *LocalDate for fields where absence means "unset".
type LocalDate struct {
	time.Time
}

// NewLocalDate truncates t to its calendar date in UTC.
func NewLocalDate(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() LocalDate {
	return NewLocalDate(time.Now().UTC())
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(localDateLayout))), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string. JSON null leaves the
// value untouched; callers model absence with a nil *LocalDate.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("invalid local date %s: %w", s, err)
	}
	t, err := time.Parse(localDateLayout, unquoted)
	if err != nil {
		return fmt.Errorf("invalid local date %q: %w", unquoted, err)
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer.
func (d LocalDate) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner. It accepts time.Time, string, and []byte
// column representations, since the SQLite driver stores dates as text.
func (d *LocalDate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		*d = NewLocalDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into LocalDate", value)
	}
}

func (d *LocalDate) scanString(s string) error {
	if len(s) > len(localDateLayout) {
		s = s[:len(localDateLayout)]
	}
	t, err := time.Parse(localDateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into LocalDate: %w", s, err)
	}
	d.Time = t
	return nil
}

// String returns the "YYYY-MM-DD" representation.
func (d LocalDate) String() string {
	return d.Format(localDateLayout)
}

// Equal reports whether two values name the same calendar date.
func (d LocalDate) Equal(other LocalDate) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// GormDataType tells GORM to use a date column for LocalDate fields.
func (LocalDate) GormDataType() string {
	return "date"
}
