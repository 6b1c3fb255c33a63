package usecase

import (
	"context"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"
)

// FlightSearch runs the search pipeline: acquire a token, fetch and
// normalize offers, rank them locally. Each call performs its own fresh
// token exchange; there is no shared state between requests.
type FlightSearch struct {
	tokens  repository.TokenRepository
	offers  repository.FlightOfferRepository
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewFlightSearch creates a new flight search usecase
func NewFlightSearch(
	tokens repository.TokenRepository,
	offers repository.FlightOfferRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *FlightSearch {
	return &FlightSearch{
		tokens:  tokens,
		offers:  offers,
		logger:  logger,
		metrics: metrics,
	}
}

// Search returns the normalized options for the query, ordered per the
// query's optimize mode. The caller must have validated that From, To and
// Start are present before invoking this.
func (u *FlightSearch) Search(ctx context.Context, query entity.Query) ([]entity.Option, error) {
	start := time.Now()
	u.metrics.SearchesTotal.Inc()

	token, err := u.tokens.AccessToken(ctx)
	if err != nil {
		u.metrics.ErrorsCount.WithLabelValues("token").Inc()
		return nil, err
	}

	options, err := u.offers.Search(ctx, token, query)
	if err != nil {
		u.metrics.ErrorsCount.WithLabelValues("search").Inc()
		return nil, err
	}

	u.metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	u.metrics.OptionsReturned.Observe(float64(len(options)))

	rankOptions(options, query.Optimize)

	u.logger.Info("Flight search completed",
		"origin", query.From,
		"destination", query.To,
		"optimize", string(query.Optimize),
		"options", len(options),
		"tookMs", time.Since(start).Milliseconds())

	return options, nil
}
