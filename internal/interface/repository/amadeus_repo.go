package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/utils"
)

const (
	// Upstream query parameters fixed by design
	searchCurrency  = "USD"
	searchResultCap = 30
)

// AmadeusRepository fetches flight offers from the Amadeus search endpoint
// and normalizes them into options
type AmadeusRepository struct {
	logger  logger.Logger
	baseURL string
	client  *http.Client
}

// NewAmadeusRepository creates a new Amadeus flight-offer repository
func NewAmadeusRepository(baseURL string, timeout time.Duration, logger logger.Logger) repository.FlightOfferRepository {
	return &AmadeusRepository{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Search fetches offers for the given query and maps each one into an
// Option, preserving the upstream order. Results are never pre-sorted by
// the upstream; ranking always happens locally in the usecase.
func (r *AmadeusRepository) Search(ctx context.Context, token string, query entity.Query) ([]entity.Option, error) {
	params := url.Values{}
	params.Set("originLocationCode", query.From)
	params.Set("destinationLocationCode", query.To)
	params.Set("departureDate", query.Start.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(query.Passengers()))
	params.Set("currencyCode", searchCurrency)
	params.Set("max", strconv.Itoa(searchResultCap))
	if query.End != nil {
		params.Set("returnDate", query.End.Format("2006-01-02"))
	}

	requestURL := fmt.Sprintf("%s/shopping/flight-offers?%s", r.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, entity.NewUpstreamError("failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, entity.NewUpstreamError("flight offer request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, entity.NewUpstreamError("failed to read response body", err)
	}

	var envelope offerSearchResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, entity.NewUpstreamError(fmt.Sprintf("search endpoint returned status %d", resp.StatusCode), nil)
		}
		return nil, entity.NewUpstreamError("failed to decode response", err)
	}

	// Error entries take precedence over any data in the same payload
	if len(envelope.Errors) > 0 {
		return nil, entity.NewUpstreamError(joinAPIErrors(envelope.Errors), nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, entity.NewUpstreamError(fmt.Sprintf("search endpoint returned status %d", resp.StatusCode), nil)
	}

	offers, err := decodeOffers(envelope.Data)
	if err != nil {
		return nil, err
	}

	options := make([]entity.Option, 0, len(offers))
	for i, offer := range offers {
		option, err := mapOffer(i, offer)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	r.logger.Debug("Mapped flight offers",
		"origin", query.From,
		"destination", query.To,
		"offers", len(options))

	return options, nil
}

// decodeOffers treats a missing or non-array data field as an empty offer
// list, not an error
func decodeOffers(data json.RawMessage) ([]flightOffer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}

	var offers []flightOffer
	if err := json.Unmarshal(trimmed, &offers); err != nil {
		return nil, entity.NewUpstreamError("failed to decode offer list", err)
	}
	return offers, nil
}

func joinAPIErrors(apiErrors []offerAPIError) string {
	messages := make([]string, 0, len(apiErrors))
	for _, apiErr := range apiErrors {
		switch {
		case apiErr.Detail != "":
			messages = append(messages, apiErr.Detail)
		case apiErr.Title != "":
			messages = append(messages, apiErr.Title)
		default:
			messages = append(messages, fmt.Sprintf("%+v", apiErr))
		}
	}
	return strings.Join(messages, "; ")
}

// mapOffer normalizes one upstream offer. The index is zero-based and
// used to synthesize an identifier when the offer carries none.
func mapOffer(index int, offer flightOffer) (entity.Option, error) {
	id := offer.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", entity.ProviderAmadeus, index)
	}

	price, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil {
		return entity.Option{}, entity.NewUpstreamError(
			fmt.Sprintf("offer %s: price total %q is not numeric", id, offer.Price.Total), nil)
	}

	if len(offer.Itineraries) == 0 {
		return entity.Option{}, entity.NewUpstreamError(
			fmt.Sprintf("offer %s: no itineraries", id), nil)
	}

	// Only the first itinerary is mapped, even for round trips
	first := offer.Itineraries[0]
	legs := make([]entity.Leg, 0, len(first.Segments))
	for _, seg := range first.Segments {
		legs = append(legs, entity.Leg{
			From:         seg.Departure.IataCode,
			To:           seg.Arrival.IataCode,
			DepartureAt:  seg.Departure.At,
			ArrivalAt:    seg.Arrival.At,
			Carrier:      seg.CarrierCode,
			FlightNumber: seg.CarrierCode + seg.Number,
			DurationMin:  utils.ParseISODuration(seg.Duration),
		})
	}

	transfers := len(legs) - 1
	if transfers < 0 {
		transfers = 0
	}

	return entity.Option{
		ID:       id,
		Provider: entity.ProviderAmadeus,
		Price:    price,
		Currency: offer.Price.Currency,
		Legs:     legs,
		// The itinerary's own duration, not the sum of leg durations;
		// the two may disagree around layover time
		TotalDurationMin: utils.ParseISODuration(first.Duration),
		Transfers:        transfers,
		Notes:            []string{},
	}, nil
}
