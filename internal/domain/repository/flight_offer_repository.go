package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// FlightOfferRepository defines the interface for fetching and normalizing
// flight offers from the upstream provider
type FlightOfferRepository interface {
	Search(ctx context.Context, token string, query entity.Query) ([]entity.Option, error)
}
