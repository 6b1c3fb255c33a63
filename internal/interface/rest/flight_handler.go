package rest

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/logger"
)

var paxPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// Searcher is the pipeline contract consumed by the HTTP layer
type Searcher interface {
	Search(ctx context.Context, query entity.Query) ([]entity.Option, error)
}

// FlightHandler translates HTTP requests into pipeline queries and
// pipeline results back into JSON responses
type FlightHandler struct {
	search Searcher
	logger logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(search Searcher, logger logger.Logger) *FlightHandler {
	return &FlightHandler{
		search: search,
		logger: logger,
	}
}

// Search handles GET /api/flights. A query missing from, to or start is
// rejected here with a 400 before the pipeline ever runs; pipeline
// failures surface as 502 with the error's message.
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	options, err := h.search.Search(r.Context(), query)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Search pipeline failed",
			"origin", query.From,
			"destination", query.To,
			"error", err)
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, searchResponse{
		Options: options,
		Count:   len(options),
	})
}

// HealthCheck handles GET /health
func (h *FlightHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}

func parseSearchQuery(r *http.Request) (entity.Query, error) {
	values := r.URL.Query()
	params := searchParams{
		From:     strings.TrimSpace(values.Get("from")),
		To:       strings.TrimSpace(values.Get("to")),
		Start:    strings.TrimSpace(values.Get("start")),
		End:      strings.TrimSpace(values.Get("end")),
		Pax:      strings.TrimSpace(values.Get("pax")),
		Optimize: strings.TrimSpace(values.Get("optimize")),
	}

	if err := params.Validate(); err != nil {
		return entity.Query{}, entity.NewValidationError("invalid query: %v", err)
	}

	start, err := time.Parse(dateLayout, params.Start)
	if err != nil {
		return entity.Query{}, entity.NewValidationError("invalid start date: %v", err)
	}

	var end *time.Time
	if params.End != "" {
		parsed, err := time.Parse(dateLayout, params.End)
		if err != nil {
			return entity.Query{}, entity.NewValidationError("invalid end date: %v", err)
		}
		end = &parsed
	}

	pax := 1
	if params.Pax != "" {
		pax, _ = strconv.Atoi(params.Pax)
	}

	optimize := entity.OptimizeMode(strings.ToLower(params.Optimize))
	if optimize == "" {
		optimize = entity.OptimizeBalanced
	}

	return entity.Query{
		From:     params.From,
		To:       params.To,
		Start:    start,
		End:      end,
		Pax:      pax,
		Optimize: optimize,
	}, nil
}
