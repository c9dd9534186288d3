// Package timex provides a time.Duration wrapper that unmarshals from the
// forms a JSON config file naturally contains.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration accepts either a duration string ("1.5s", "200ms") or a bare
// number of nanoseconds when unmarshalling from JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
