package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/logger"
)

type stubSearcher struct {
	options  []entity.Option
	err      error
	calls    int
	gotQuery entity.Query
}

func (s *stubSearcher) Search(ctx context.Context, query entity.Query) ([]entity.Option, error) {
	s.calls++
	s.gotQuery = query
	return s.options, s.err
}

func doSearch(t *testing.T, searcher Searcher, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewFlightHandler(searcher, logger.NewLogger())
	recorder := httptest.NewRecorder()
	handler.Search(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestSearchMissingRequiredParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing from", target: "/api/flights?to=LAX&start=2024-06-01"},
		{name: "missing to", target: "/api/flights?from=JFK&start=2024-06-01"},
		{name: "missing start", target: "/api/flights?from=JFK&to=LAX"},
		{name: "malformed start", target: "/api/flights?from=JFK&to=LAX&start=June+1st"},
		{name: "malformed end", target: "/api/flights?from=JFK&to=LAX&start=2024-06-01&end=soon"},
		{name: "non-positive pax", target: "/api/flights?from=JFK&to=LAX&start=2024-06-01&pax=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &stubSearcher{}
			recorder := doSearch(t, searcher, tt.target)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			require.Zero(t, searcher.calls, "pipeline must not run on invalid input")

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.NotEmpty(t, body["error"])
		})
	}
}

func TestSearchDefaultsPaxAndOptimize(t *testing.T) {
	searcher := &stubSearcher{}
	recorder := doSearch(t, searcher, "/api/flights?from=JFK&to=LAX&start=2024-06-01")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 1, searcher.gotQuery.Passengers())
	require.Equal(t, entity.OptimizeBalanced, searcher.gotQuery.Optimize)
	require.Nil(t, searcher.gotQuery.End)
}

func TestSearchParsesFullQuery(t *testing.T) {
	searcher := &stubSearcher{}
	recorder := doSearch(t, searcher,
		"/api/flights?from=JFK&to=LAX&start=2024-06-01&end=2024-06-08&pax=2&optimize=SHORTEST")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "JFK", searcher.gotQuery.From)
	require.Equal(t, "LAX", searcher.gotQuery.To)
	require.Equal(t, "2024-06-01", searcher.gotQuery.Start.Format("2006-01-02"))
	require.NotNil(t, searcher.gotQuery.End)
	require.Equal(t, "2024-06-08", searcher.gotQuery.End.Format("2006-01-02"))
	require.Equal(t, 2, searcher.gotQuery.Pax)
	require.Equal(t, entity.OptimizeShortest, searcher.gotQuery.Optimize)
}

func TestSearchSuccessBody(t *testing.T) {
	searcher := &stubSearcher{options: []entity.Option{
		{
			ID:       "OFFER-1",
			Provider: entity.ProviderAmadeus,
			Price:    150,
			Currency: "USD",
			Legs: []entity.Leg{{
				From: "JFK", To: "LAX", Carrier: "B6", FlightNumber: "B6615", DurationMin: 355,
			}},
			TotalDurationMin: 355,
			Transfers:        0,
			Notes:            []string{},
		},
	}}
	recorder := doSearch(t, searcher, "/api/flights?from=JFK&to=LAX&start=2024-06-01")

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body searchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	require.Equal(t, "OFFER-1", body.Options[0].ID)
	require.Equal(t, "B6615", body.Options[0].Legs[0].FlightNumber)
}

func TestSearchPipelineFailuresAreBadGateway(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "auth", err: entity.NewAuthError("credential exchange failed", nil)},
		{name: "upstream", err: entity.NewUpstreamError("INVALID FORMAT", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &stubSearcher{err: tt.err}
			recorder := doSearch(t, searcher, "/api/flights?from=JFK&to=LAX&start=2024-06-01")

			require.Equal(t, http.StatusBadGateway, recorder.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.Contains(t, body["error"], tt.err.Error())
		})
	}
}

func TestHealthCheck(t *testing.T) {
	handler := NewFlightHandler(&stubSearcher{}, logger.NewLogger())
	recorder := httptest.NewRecorder()

	handler.HealthCheck(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Healthy", recorder.Body.String())
}
