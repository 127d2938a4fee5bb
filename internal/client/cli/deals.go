package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
	"github.com/dmitrijs2005/dealhunter/internal/errutil"
)

// searchDeals looks up deals for title after the configured pause. API
// failures are reported and yield no deals; only cancellation of ctx is
// returned as an error.
func (a *App) searchDeals(ctx context.Context, title string) ([]models.Deal, error) {
	a.printf("Hunting for deals on %s...\n", title)
	if err := pause(ctx, a.config.SearchDelay); err != nil {
		return nil, err
	}

	deals, err := a.dealService.Search(ctx, title)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		a.printf("Oops! We hit a snag while looking for deals: %v\n", err)
		errutil.LogError(ctx, a.logger, "deal search failed", err)
		return nil, nil
	}
	return deals, nil
}

func (a *App) displayDeals(deals []models.Deal) {
	if len(deals) == 0 {
		a.println("Aww, we couldn't find any deals for that game. Maybe try another?")
		return
	}

	a.println("\n🎉 Jackpot! Here are the deals we found: 🎉")
	for _, d := range deals {
		a.printf("\n🕹️ %s\n", d.Title)
		a.printf("🏪 Store: %s\n", d.StoreID)
		a.printf("💲 Normal Price: $%s\n", d.NormalPrice)
		a.printf("🏷️ Sale Price: $%s\n", d.SalePrice)
		a.printf("💰 You Save: %s%%\n", d.Savings)
		a.printf("⭐ Deal Rating: %s\n", d.DealRating)
		a.printf("🔗 Grab it here: %s\n", d.RedirectURL(a.config.RedirectURL))
	}
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
