package client

import (
	"context"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
)

// DealsAPI is the read surface of the deals catalog.
type DealsAPI interface {
	LookupGames(ctx context.Context, title string) ([]models.Game, error)
	FetchDeals(ctx context.Context, gameID string) ([]models.Deal, error)
}
