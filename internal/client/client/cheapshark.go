package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/oops"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
	"github.com/dmitrijs2005/dealhunter/internal/common"
	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// DefaultBaseURL is the public CheapShark API root.
const DefaultBaseURL = "https://www.cheapshark.com/api/1.0"

var _ DealsAPI = (*CheapSharkClient)(nil)

// CheapSharkClient implements DealsAPI over HTTP.
type CheapSharkClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logging.Logger
}

// NewCheapSharkClient returns a client for baseURL. A nil httpClient uses
// http.DefaultClient and its default timeouts.
func NewCheapSharkClient(httpClient *http.Client, baseURL string, logger logging.Logger) *CheapSharkClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CheapSharkClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// LookupGames returns the games whose title matches title. An empty slice
// means no match.
func (c *CheapSharkClient) LookupGames(ctx context.Context, title string) ([]models.Game, error) {
	var games []models.Game
	if err := c.get(ctx, "games", url.Values{"title": {title}}, &games); err != nil {
		return nil, oops.With("title", title).Wrap(err)
	}
	return games, nil
}

// FetchDeals returns the current deals for gameID.
func (c *CheapSharkClient) FetchDeals(ctx context.Context, gameID string) ([]models.Deal, error) {
	var deals []models.Deal
	if err := c.get(ctx, "deals", url.Values{"gameID": {gameID}}, &deals); err != nil {
		return nil, oops.With("gameID", gameID).Wrap(err)
	}
	return deals, nil
}

func (c *CheapSharkClient) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	reqURL := c.baseURL + "/" + endpoint + "?" + query.Encode()
	log := c.logger.With("request_id", uuid.NewString(), "endpoint", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return oops.Code("DEALS_REQUEST_FAILED").
			With("url", reqURL).
			Wrap(fmt.Errorf("%w: %w", common.ErrExternalService, err))
	}
	req.Header.Set("Accept", "application/json")

	log.Debug(ctx, "deals api request", "url", reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return oops.Code("DEALS_REQUEST_FAILED").
			With("url", reqURL).
			Wrap(fmt.Errorf("%w: %w", common.ErrExternalService, err))
	}
	defer resp.Body.Close()

	log.Debug(ctx, "deals api response", "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return oops.Code("DEALS_BAD_STATUS").
			With("url", reqURL).
			With("status", resp.StatusCode).
			Wrap(fmt.Errorf("%w: unexpected status %s", common.ErrExternalService, resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return oops.Code("DEALS_DECODE_FAILED").
			With("url", reqURL).
			Wrap(fmt.Errorf("%w: decoding response: %w", common.ErrExternalService, err))
	}
	return nil
}
