package repository

import "encoding/json"

// offerSearchResponse is the upstream envelope. Errors may be present
// instead of, or alongside, data; data stays raw so a missing or
// non-array value can degrade to an empty result instead of failing.
type offerSearchResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []offerAPIError `json:"errors"`
}

type offerAPIError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type flightOffer struct {
	ID          string      `json:"id"`
	Price       offerPrice  `json:"price"`
	Itineraries []itinerary `json:"itineraries"`
}

type offerPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

type segment struct {
	Departure   segmentPoint `json:"departure"`
	Arrival     segmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Duration    string       `json:"duration"`
}

type segmentPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}
