package models

// Game is one match of a title lookup.
type Game struct {
	GameID         string `json:"gameID"`
	SteamAppID     string `json:"steamAppID"`
	Cheapest       string `json:"cheapest"`
	CheapestDealID string `json:"cheapestDealID"`
	External       string `json:"external"`
	Thumb          string `json:"thumb"`
}

// Deal is a single store's offer for a game. Prices, savings and rating are
// kept as the decimal strings the API sends.
type Deal struct {
	Title       string `json:"title"`
	StoreID     string `json:"storeID"`
	NormalPrice string `json:"normalPrice"`
	SalePrice   string `json:"salePrice"`
	Savings     string `json:"savings"`
	DealRating  string `json:"dealRating"`
	DealID      string `json:"dealID"`
}

// RedirectURL returns the link that sends the user to the store for this deal.
// DealID arrives already URL-encoded and is appended as is.
func (d Deal) RedirectURL(base string) string {
	return base + "?dealID=" + d.DealID
}
