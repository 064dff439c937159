package timex

import (
	"encoding/json"
	"time"
)

// ISOLayout is UTC with millisecond precision, e.g. "2026-10-18T12:00:00.000Z".
const ISOLayout = "2006-01-02T15:04:05.000Z"

// ISOTime marshals as ISOLayout regardless of the zone it holds.
type ISOTime struct {
	time.Time
}

func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(ISOLayout))
}

func (t *ISOTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
