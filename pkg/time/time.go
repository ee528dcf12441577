package time

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	compose_json "github.com/sisense/compose-sdk-charts/pkg/json"
)

// Time is a date cell as sent by a query result: unix milliseconds or a date string
type Time struct {
	Number *float64
	String *string
}

func (x *Time) UnmarshalJSON(data []byte) error {
	err := compose_json.UnmarshalUnion(data, &x.Number, &x.String)
	if err != nil {
		return err
	}
	return nil
}

func (x *Time) MarshalJSON() ([]byte, error) {
	return compose_json.MarshalUnion(x.Number, x.String)
}

func (x *Time) Time() (time.Time, error) {
	if x.Number != nil {
		return FromUnixMilli(int64(*x.Number)), nil
	}
	if x.String != nil {
		return ParseDate(*x.String)
	}
	return time.Time{}, errors.New("time must not be null")
}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate accepts RFC3339, ISO dates with or without time, and unix milliseconds
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromUnixMilli(ms), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date '%s'", s)
}

func FromUnixMilli(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC()
}

func UnixMilli(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}
