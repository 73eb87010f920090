package golemio

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// BoardResponse is the object returned by /departureboards/
type BoardResponse struct {
	Departures []Departure `json:"departures"`
	InfoTexts  []InfoText  `json:"infotexts,omitempty"`
}

// Departure is a single vehicle leaving the requested stop
type Departure struct {
	Route              Route              `json:"route"`
	Trip               Trip               `json:"trip"`
	DepartureTimestamp DepartureTimestamp `json:"departure_timestamp"`
}

// Route holds the public line label, e.g. "22" or "A"
type Route struct {
	ShortName string `json:"short_name"`
}

// Trip holds the headsign shown on the vehicle
type Trip struct {
	Headsign string `json:"headsign"`
}

// DepartureTimestamp keeps the raw predicted value; how it is read depends on
// the configured TimestampFormat.
type DepartureTimestamp struct {
	Predicted json.RawMessage `json:"predicted"`
}

// InfoText is a service alert attached to the board
type InfoText struct {
	Text   string `json:"text"`
	TextEn string `json:"text_en,omitempty"`
}

// PredictedTime interprets the predicted departure timestamp with f.
func (d Departure) PredictedTime(f TimestampFormat) (time.Time, error) {
	t, err := f.Parse(d.DepartureTimestamp.Predicted)
	if err != nil {
		return time.Time{}, &Error{
			Kind: KindParse,
			Err:  errors.Wrapf(err, "line %s to %s", d.Route.ShortName, d.Trip.Headsign),
		}
	}
	return t, nil
}
