package storage

import (
	"context"

	"github.com/sewalink/sewalink-functions/pkg/models"
)

// GiftWriter defines the privileged interface for moving balance between
// accounts. Implementations must guarantee that the debit, the credit and
// the gift record commit atomically, with no partial effects visible.
type GiftWriter interface {
	// TransferGift validates and executes the transfer described by gift
	// (SenderId, ReceiverId, Amount, Message, GiftType). The store assigns
	// the record id and commit timestamp and returns the completed record.
	TransferGift(ctx context.Context, gift *models.GiftRecord) (*models.GiftRecord, error)
}

// GiftReader defines the interface for reading and aggregating the gift
// ledger.
type GiftReader interface {
	// GetGift retrieves a single gift record by its ID.
	GetGift(ctx context.Context, giftID string) (*models.GiftRecord, error)

	// ListRecentGifts retrieves the most recent gifts across all users,
	// newest first.
	ListRecentGifts(ctx context.Context, limit int32) ([]models.GiftRecord, error)

	// ListGiftsSent retrieves gifts sent by a user, newest first, capped at
	// limit.
	ListGiftsSent(ctx context.Context, userID string, limit int32) ([]models.GiftRecord, error)

	// ListGiftsReceived retrieves gifts received by a user, newest first,
	// capped at limit.
	ListGiftsReceived(ctx context.Context, userID string, limit int32) ([]models.GiftRecord, error)

	// GetGiftStats computes the all-time sent/received totals for a user.
	GetGiftStats(ctx context.Context, userID string) (*models.GiftStats, error)

	// TopSenders aggregates the whole ledger by sender and returns the top
	// rows by total amount, ties broken by user id ascending.
	TopSenders(ctx context.Context, limit int32) ([]models.LeaderboardRow, error)

	// TopReceivers aggregates the whole ledger by receiver and returns the
	// top rows by total amount, ties broken by user id ascending.
	TopReceivers(ctx context.Context, limit int32) ([]models.LeaderboardRow, error)
}

// GiftStore combines the writer and reader interfaces.
type GiftStore interface {
	GiftWriter
	GiftReader
}
