package storage

import (
	"context"

	"github.com/sewalink/sewalink-functions/pkg/models"
)

// AccountStore defines the interface for managing coin accounts.
type AccountStore interface {
	// GetAccount retrieves a user's account by their user ID.
	GetAccount(ctx context.Context, userID string) (*models.Account, error)

	// CreateAccount creates a new account with its seed balance.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// DeleteAccount deletes a user's account.
	DeleteAccount(ctx context.Context, userID string) error

	// ListAccounts retrieves all accounts from the storage.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
