package accounts

import (
	"context"

	"github.com/dmitrijs2005/dealhunter/internal/client/models"
)

// Repository loads and saves the full account store.
//
// Load on a store that was never saved returns an empty Accounts and no
// error. Load may return a non-nil partial Accounts together with an error
// matching common.ErrStoreCorrupt.
type Repository interface {
	Load(ctx context.Context) (*models.Accounts, error)
	Save(ctx context.Context, accounts *models.Accounts) error
}
