// Package models provides request and response models for the Reiseplaner API.
package models

import "encoding/json"

// Default values applied when optional request fields are omitted entirely.
// An explicit empty string is a distinct, valid input and is passed through.
const (
	DefaultInterests = "Essen, Kultur"
	DefaultWeather   = "sonnig"
)

// TripRequest is the body of POST /plan_trip. Optional fields use pointers so
// that "omitted" and "empty string" can be told apart; days is kept raw so
// that a non-integer value surfaces as a field validation error instead of a
// bare decode failure.
type TripRequest struct {
	City      string           `json:"city"`
	Days      *json.RawMessage `json:"days"`
	Interests *string          `json:"interests"`
	Weather   *string          `json:"weather"`
}

// TripResponse is the body of a successful POST /plan_trip.
type TripResponse struct {
	Plan string `json:"plan"`
}
