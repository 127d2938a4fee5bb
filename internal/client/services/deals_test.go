package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
	"github.com/dmitrijs2005/dealhunter/internal/common"
	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// fakeDealsAPI implements client.DealsAPI for unit tests of DealService.
type fakeDealsAPI struct {
	games    []models.Game
	gamesErr error
	deals    []models.Deal
	dealsErr error

	lookupTitles []string
	fetchIDs     []string
}

func (f *fakeDealsAPI) LookupGames(_ context.Context, title string) ([]models.Game, error) {
	f.lookupTitles = append(f.lookupTitles, title)
	return f.games, f.gamesErr
}

func (f *fakeDealsAPI) FetchDeals(_ context.Context, gameID string) ([]models.Deal, error) {
	f.fetchIDs = append(f.fetchIDs, gameID)
	return f.deals, f.dealsErr
}

func TestSearch_FirstMatchWins(t *testing.T) {
	api := &fakeDealsAPI{
		games: []models.Game{{GameID: "612", External: "LEGO Batman"}, {GameID: "999", External: "LEGO Batman 2"}},
		deals: []models.Deal{{Title: "LEGO Batman", DealID: "d1"}},
	}
	svc := NewDealService(api, logging.Discard())

	deals, err := svc.Search(context.Background(), "lego batman")
	require.NoError(t, err)
	require.Equal(t, []string{"lego batman"}, api.lookupTitles)
	require.Equal(t, []string{"612"}, api.fetchIDs)
	require.Len(t, deals, 1)
	require.Equal(t, "d1", deals[0].DealID)
}

func TestSearch_NoMatch_NoDealsNoError(t *testing.T) {
	api := &fakeDealsAPI{games: []models.Game{}}
	svc := NewDealService(api, logging.Discard())

	deals, err := svc.Search(context.Background(), "NoSuchGameXYZ")
	require.NoError(t, err)
	require.Nil(t, deals)
	require.Empty(t, api.fetchIDs, "deals must not be fetched without a match")
}

func TestSearch_LookupFailurePropagates(t *testing.T) {
	api := &fakeDealsAPI{gamesErr: common.ErrExternalService}
	svc := NewDealService(api, logging.Discard())

	_, err := svc.Search(context.Background(), "portal")
	require.ErrorIs(t, err, common.ErrExternalService)
	require.Empty(t, api.fetchIDs)
}

func TestSearch_DealsFailurePropagates(t *testing.T) {
	boom := errors.Join(common.ErrExternalService, errors.New("503"))
	api := &fakeDealsAPI{
		games:    []models.Game{{GameID: "1"}},
		dealsErr: boom,
	}
	svc := NewDealService(api, logging.Discard())

	deals, err := svc.Search(context.Background(), "portal")
	require.ErrorIs(t, err, common.ErrExternalService)
	require.Nil(t, deals)
}
