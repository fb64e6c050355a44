package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// ErrInvalidDate is returned when a JSON value cannot be read as a [Date].
var ErrInvalidDate = errors.New("must be a valid date")

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Date is a point in time read from JSON. It accepts RFC 3339 timestamps,
// timestamps without a zone, date-only strings (read as UTC midnight) and
// numbers holding Unix epoch milliseconds.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] != '"' {
		ms, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return ErrInvalidDate
		}
		d.Time = time.UnixMilli(int64(ms)).UTC()
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return ErrInvalidDate
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
