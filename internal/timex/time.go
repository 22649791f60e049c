package timex

import (
	"errors"
	"strings"
	"time"
)

// Time wraps time.Time so JSON payloads can carry timestamps either as
// RFC 3339 or as the zone-less ISO 8601 form some backends emit
// ("2006-01-02T15:04:05.999999"). Zone-less values are taken as UTC.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return errors.New("invalid timestamp: " + s)
}
