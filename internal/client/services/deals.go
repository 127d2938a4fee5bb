package services

import (
	"context"

	"github.com/dmitrijs2005/dealhunter/internal/client/client"
	"github.com/dmitrijs2005/dealhunter/internal/client/models"
	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// DealService finds deals for a game title.
type DealService interface {
	// Search returns the deals of the first game matching title, or nil when
	// nothing matches.
	Search(ctx context.Context, title string) ([]models.Deal, error)
}

type dealService struct {
	api    client.DealsAPI
	logger logging.Logger
}

// NewDealService constructs a DealService over the deals API.
func NewDealService(api client.DealsAPI, logger logging.Logger) DealService {
	return &dealService{api: api, logger: logger}
}

func (s *dealService) Search(ctx context.Context, title string) ([]models.Deal, error) {
	games, err := s.api.LookupGames(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		s.logger.Debug(ctx, "no game matches title", "title", title)
		return nil, nil
	}

	// first match wins; ambiguous titles are not disambiguated
	game := games[0]
	s.logger.Debug(ctx, "game matched", "title", title, "gameID", game.GameID, "matches", len(games))

	deals, err := s.api.FetchDeals(ctx, game.GameID)
	if err != nil {
		return nil, err
	}
	return deals, nil
}
