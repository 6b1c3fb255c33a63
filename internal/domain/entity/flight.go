// internal/domain/entity/flight.go
package entity

import "time"

// ProviderAmadeus tags options that came from the Amadeus flight-offer API
const ProviderAmadeus = "amadeus"

// OptimizeMode selects the ranking strategy for a search
type OptimizeMode string

const (
	OptimizeCheapest OptimizeMode = "cheapest"
	OptimizeShortest OptimizeMode = "shortest"
	OptimizeBalanced OptimizeMode = "balanced"
)

// Query is the validated search request handed to the pipeline.
// From, To and Start are guaranteed non-empty by the HTTP layer.
type Query struct {
	From     string
	To       string
	Start    time.Time
	End      *time.Time
	Pax      int
	Optimize OptimizeMode
}

// Passengers returns the effective passenger count, defaulting to 1
func (q Query) Passengers() int {
	if q.Pax <= 0 {
		return 1
	}
	return q.Pax
}

// Leg is one flight segment within an Option. Departure and arrival
// timestamps are passed through from the upstream unparsed.
type Leg struct {
	From         string `json:"from"`
	To           string `json:"to"`
	DepartureAt  string `json:"departureAt"`
	ArrivalAt    string `json:"arrivalAt"`
	Carrier      string `json:"carrier"`
	FlightNumber string `json:"flightNumber"`
	DurationMin  int    `json:"durationMin"`
}

// Option is one normalized bookable itinerary. Options are immutable once
// mapped; only their relative order in the returned list changes.
type Option struct {
	ID               string   `json:"id"`
	Provider         string   `json:"provider"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	Legs             []Leg    `json:"legs"`
	TotalDurationMin int      `json:"totalDurationMin"`
	Transfers        int      `json:"transfers"`
	Notes            []string `json:"notes"`
}
