// Package memory provides an in-memory Storage implementation. It backs the
// concurrency tests and local development without a DynamoDB endpoint.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

// Store keeps accounts and the gift ledger in process memory. A single mutex
// guards both maps so a transfer observes and mutates them atomically, which
// mirrors the transactional write the DynamoDB store performs.
type Store struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	gifts    map[string]*models.GiftRecord
	ledger   []string // gift ids in insertion order
}

var _ storage.Storage = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts: make(map[string]*models.Account),
		gifts:    make(map[string]*models.GiftRecord),
	}
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.UserId]; ok {
		return nil, storage.ErrAccountExists
	}
	if account.Version == 0 {
		account.Version = 1
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	stored := *account
	s.accounts[account.UserId] = &stored
	return account, nil
}

func (s *Store) DeleteAccount(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[userID]; !ok {
		return storage.ErrAccountNotFound
	}
	delete(s.accounts, userID)
	return nil
}

func (s *Store) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("account for user %s: %w", userID, storage.ErrAccountNotFound)
	}
	copied := *account
	return &copied, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, *account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].UserId < accounts[j].UserId })
	return accounts, nil
}

// TransferGift debits the sender, credits the receiver and appends the gift
// record while holding the store lock, so either every effect lands or none
// does.
func (s *Store) TransferGift(ctx context.Context, gift *models.GiftRecord) (*models.GiftRecord, error) {
	if gift.Amount <= 0 {
		return nil, storage.ErrInvalidAmount
	}
	if gift.SenderId == gift.ReceiverId {
		return nil, storage.ErrSelfGift
	}
	if gift.GiftType == "" {
		gift.GiftType = models.GiftTypeGeneral
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.accounts[gift.SenderId]
	if !ok {
		return nil, fmt.Errorf("sender: %w", storage.ErrAccountNotFound)
	}
	receiver, ok := s.accounts[gift.ReceiverId]
	if !ok {
		return nil, fmt.Errorf("receiver: %w", storage.ErrAccountNotFound)
	}
	if sender.Balance < gift.Amount {
		return nil, storage.ErrInsufficientFunds
	}

	gift.Id = uuid.New().String()
	gift.CreatedAt = time.Now()

	sender.Balance -= gift.Amount
	sender.Version++
	receiver.Balance += gift.Amount
	receiver.Version++

	stored := *gift
	s.gifts[gift.Id] = &stored
	s.ledger = append(s.ledger, gift.Id)
	return gift, nil
}

func (s *Store) GetGift(ctx context.Context, giftID string) (*models.GiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gift, ok := s.gifts[giftID]
	if !ok {
		return nil, fmt.Errorf("gift with ID %s: %w", giftID, storage.ErrGiftNotFound)
	}
	copied := *gift
	return &copied, nil
}

func (s *Store) ListRecentGifts(ctx context.Context, limit int32) ([]models.GiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newestFirst(func(*models.GiftRecord) bool { return true }, limit), nil
}

func (s *Store) ListGiftsSent(ctx context.Context, userID string, limit int32) ([]models.GiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newestFirst(func(g *models.GiftRecord) bool { return g.SenderId == userID }, limit), nil
}

func (s *Store) ListGiftsReceived(ctx context.Context, userID string, limit int32) ([]models.GiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newestFirst(func(g *models.GiftRecord) bool { return g.ReceiverId == userID }, limit), nil
}

// newestFirst walks the ledger backwards collecting matching gifts. Callers
// must hold the lock.
func (s *Store) newestFirst(match func(*models.GiftRecord) bool, limit int32) []models.GiftRecord {
	var gifts []models.GiftRecord
	for i := len(s.ledger) - 1; i >= 0; i-- {
		gift := s.gifts[s.ledger[i]]
		if !match(gift) {
			continue
		}
		gifts = append(gifts, *gift)
		if limit > 0 && int32(len(gifts)) >= limit {
			break
		}
	}
	return gifts
}

func (s *Store) GetGiftStats(ctx context.Context, userID string) (*models.GiftStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.GiftStats{}
	for _, gift := range s.gifts {
		if gift.SenderId == userID {
			stats.Sent.Count++
			stats.Sent.Total += gift.Amount
		}
		if gift.ReceiverId == userID {
			stats.Received.Count++
			stats.Received.Total += gift.Amount
		}
	}
	return stats, nil
}

func (s *Store) TopSenders(ctx context.Context, limit int32) ([]models.LeaderboardRow, error) {
	return s.leaderboard(func(g *models.GiftRecord) string { return g.SenderId }, limit), nil
}

func (s *Store) TopReceivers(ctx context.Context, limit int32) ([]models.LeaderboardRow, error) {
	return s.leaderboard(func(g *models.GiftRecord) string { return g.ReceiverId }, limit), nil
}

func (s *Store) leaderboard(keyOf func(*models.GiftRecord) string, limit int32) []models.LeaderboardRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	byUser := make(map[string]*models.LeaderboardRow)
	for _, gift := range s.gifts {
		key := keyOf(gift)
		row, ok := byUser[key]
		if !ok {
			row = &models.LeaderboardRow{UserId: key}
			byUser[key] = row
		}
		row.Count++
		row.Total += gift.Amount
	}

	rows := make([]models.LeaderboardRow, 0, len(byUser))
	for _, row := range byUser {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].UserId < rows[j].UserId
	})

	if limit > 0 && int32(len(rows)) > limit {
		rows = rows[:limit]
	}
	return rows
}
