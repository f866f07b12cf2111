package gtfs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "20060102"

var (
	// ErrInvalidBoolField is returned if a boolean field has invalid data.
	ErrInvalidBoolField = errors.New("invalid boolean field supplied")
	// ErrInvalidTimeField is returned if a time field isn't formatted as HH:MM:SS.
	ErrInvalidTimeField = errors.New("invalid time field supplied")
)

// CSVBool is a CSV marshalable boolean value.
type CSVBool bool

// MarshalCSV marshals the value into a string format.
func (b *CSVBool) MarshalCSV() (string, error) {
	if *b {
		return "1", nil
	}
	return "0", nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a bool.
func (b *CSVBool) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		*b = false
		return nil
	}

	val, err := strconv.ParseInt(csv, 10, 32)
	if err != nil {
		return err
	}

	switch val {
	case 1:
		*b = true
	case 0:
		*b = false
	default:
		return ErrInvalidBoolField
	}
	return nil
}

// CSVDate is a GTFS date parsed from CSV.
type CSVDate struct {
	time.Time
}

// MarshalCSV marshals the value into a string format.
func (d *CSVDate) MarshalCSV() (string, error) {
	return d.Format(dateFormat), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a date.
func (d *CSVDate) UnmarshalCSV(csv string) (err error) {
	d.Time, err = time.Parse(dateFormat, strings.TrimSpace(csv))
	return err
}

// CSVInt is a CSV marshalable int value.
type CSVInt int

// MarshalCSV marshals the value into a string format.
func (i *CSVInt) MarshalCSV() (string, error) {
	return fmt.Sprintf("%d", *i), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to an int.
func (i *CSVInt) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if len(csv) < 1 {
		*i = 0
		return nil
	}

	val, err := strconv.ParseInt(csv, 10, 32)
	if err != nil {
		return err
	}

	*i = CSVInt(val)
	return nil
}

// CSVTime is a GTFS clock time (HH:MM:SS). Hours may reach 24 and beyond
// for trips running past midnight on their service day.
type CSVTime struct {
	Hour   int
	Minute int
	Second int
}

// MarshalCSV marshals the value into a string format.
func (t *CSVTime) MarshalCSV() (string, error) {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts to convert it to a clock time.
func (t *CSVTime) UnmarshalCSV(csv string) error {
	parts := strings.Split(strings.TrimSpace(csv), ":")
	if len(parts) != 3 {
		return ErrInvalidTimeField
	}

	vals := make([]int, 3)
	for idx, part := range parts {
		val, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return err
		}
		if val < 0 {
			return ErrInvalidTimeField
		}
		vals[idx] = int(val)
	}
	if vals[1] > 59 || vals[2] > 59 {
		return ErrInvalidTimeField
	}

	t.Hour = vals[0]
	t.Minute = vals[1]
	t.Second = vals[2]
	return nil
}

// Minutes returns the time as minutes since midnight of the service day.
// Seconds contribute fractionally.
func (t *CSVTime) Minutes() float64 {
	return float64(t.Hour)*60 + float64(t.Minute) + float64(t.Second)/60
}
