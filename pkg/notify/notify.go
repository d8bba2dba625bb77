package notify

import (
	"context"

	"github.com/sewalink/sewalink-functions/pkg/models"
)

// Notifier publishes gift lifecycle events for downstream consumers
// (in-app notifications, email digests).
type Notifier interface {
	// GiftSent announces a committed gift transfer. Delivery is best effort:
	// the transfer has already committed by the time this runs, and failures
	// must never be surfaced to the sender.
	GiftSent(ctx context.Context, gift *models.GiftRecord) error
}

// NoOp is a Notifier that drops all events. Used in tests and in binaries
// with no queue configured.
type NoOp struct{}

// GiftSent does nothing.
func (NoOp) GiftSent(ctx context.Context, gift *models.GiftRecord) error {
	return nil
}
