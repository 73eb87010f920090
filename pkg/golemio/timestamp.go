package golemio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimestampFormat fixes how departure_timestamp.predicted is read. It is a
// deployment setting; the format is never guessed from the payload.
type TimestampFormat int

const (
	// ISO8601 reads a JSON string such as "2026-10-15T14:03:00+02:00".
	ISO8601 TimestampFormat = iota
	// EpochSeconds reads a JSON number of seconds since the Unix epoch.
	EpochSeconds
)

func (f TimestampFormat) String() string {
	switch f {
	case ISO8601:
		return "iso8601"
	case EpochSeconds:
		return "epoch"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseTimestampFormat maps a config value onto a TimestampFormat. An empty
// string selects ISO8601.
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "iso8601", "iso":
		return ISO8601, nil
	case "epoch", "unix":
		return EpochSeconds, nil
	default:
		return 0, errors.Errorf("unknown timestamp format %q (want iso8601 or epoch)", s)
	}
}

// Parse converts a raw predicted value into an absolute instant.
func (f TimestampFormat) Parse(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, errors.New("missing predicted timestamp")
	}

	switch f {
	case ISO8601:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, errors.Wrap(err, "predicted timestamp is not an ISO-8601 string")
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, errors.Wrap(err, "cannot parse predicted timestamp")
		}
		return t, nil
	case EpochSeconds:
		var secs float64
		if err := json.Unmarshal(raw, &secs); err != nil {
			return time.Time{}, errors.Wrap(err, "predicted timestamp is not epoch seconds")
		}
		whole, frac := math.Modf(secs)
		return time.Unix(int64(whole), int64(frac*float64(time.Second))), nil
	default:
		return time.Time{}, errors.Errorf("unsupported timestamp format %s", f)
	}
}
