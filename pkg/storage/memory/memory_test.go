package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccounts(t *testing.T, store *Store, balances map[string]int64) {
	t.Helper()
	for userID, balance := range balances {
		_, err := store.CreateAccount(context.Background(), &models.Account{UserId: userID, Balance: balance})
		require.NoError(t, err)
	}
}

func mustBalance(t *testing.T, store *Store, userID string) int64 {
	t.Helper()
	account, err := store.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	return account.Balance
}

func TestTransferMovesBalances(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"sender": 100, "receiver": 50})

	gift, err := store.TransferGift(context.Background(), &models.GiftRecord{
		SenderId: "sender", ReceiverId: "receiver", Amount: 30, Message: "great work",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, gift.Id)
	assert.Equal(t, int64(70), mustBalance(t, store, "sender"))
	assert.Equal(t, int64(80), mustBalance(t, store, "receiver"))

	stored, err := store.GetGift(context.Background(), gift.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(30), stored.Amount)
	assert.Equal(t, "great work", stored.Message)
	assert.Equal(t, models.GiftTypeGeneral, stored.GiftType)
}

func TestTransferInsufficientFundsLeavesStateUntouched(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"sender": 10, "receiver": 0})

	_, err := store.TransferGift(context.Background(), &models.GiftRecord{
		SenderId: "sender", ReceiverId: "receiver", Amount: 50,
	})
	assert.ErrorIs(t, err, storage.ErrInsufficientFunds)

	// Neither balance moved and no record was written.
	assert.Equal(t, int64(10), mustBalance(t, store, "sender"))
	assert.Equal(t, int64(0), mustBalance(t, store, "receiver"))
	gifts, err := store.ListRecentGifts(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, gifts)
}

func TestTransferValidation(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"sender": 100, "receiver": 0})

	_, err := store.TransferGift(context.Background(), &models.GiftRecord{
		SenderId: "sender", ReceiverId: "receiver", Amount: 0,
	})
	assert.ErrorIs(t, err, storage.ErrInvalidAmount)

	_, err = store.TransferGift(context.Background(), &models.GiftRecord{
		SenderId: "sender", ReceiverId: "receiver", Amount: -5,
	})
	assert.ErrorIs(t, err, storage.ErrInvalidAmount)

	_, err = store.TransferGift(context.Background(), &models.GiftRecord{
		SenderId: "sender", ReceiverId: "sender", Amount: 10,
	})
	assert.ErrorIs(t, err, storage.ErrSelfGift)

	_, err = store.TransferGift(context.Background(), &models.GiftRecord{
		SenderId: "ghost", ReceiverId: "receiver", Amount: 10,
	})
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

// Concurrent transfers between a pool of accounts must conserve the total
// coin supply: every debit has a matching credit.
func TestConcurrentTransfersConserveTotalSupply(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"a": 1000, "b": 1000, "c": 1000})
	const total = 3000

	pairs := []struct{ from, to string }{
		{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "c"}, {"b", "a"}, {"c", "b"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, p := range pairs {
			wg.Add(1)
			go func(from, to string) {
				defer wg.Done()
				// Insufficient funds is an acceptable outcome under contention.
				_, err := store.TransferGift(context.Background(), &models.GiftRecord{
					SenderId: from, ReceiverId: to, Amount: 7,
				})
				if err != nil {
					assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
				}
			}(p.from, p.to)
		}
	}
	wg.Wait()

	var sum int64
	accounts, err := store.ListAccounts(context.Background())
	require.NoError(t, err)
	for _, account := range accounts {
		assert.GreaterOrEqual(t, account.Balance, int64(0))
		sum += account.Balance
	}
	assert.Equal(t, int64(total), sum)
}

// Two simultaneous transfers that each individually fit the balance, but not
// together, must not both commit.
func TestConcurrentTransfersCannotDoubleSpend(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"sender": 100, "r1": 0, "r2": 0})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, receiver := range []string{"r1", "r2"} {
		wg.Add(1)
		go func(i int, receiver string) {
			defer wg.Done()
			_, errs[i] = store.TransferGift(context.Background(), &models.GiftRecord{
				SenderId: "sender", ReceiverId: receiver, Amount: 80,
			})
		}(i, receiver)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(20), mustBalance(t, store, "sender"))
	assert.Equal(t, int64(80), mustBalance(t, store, "r1")+mustBalance(t, store, "r2"))
}

func TestGiftStats(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"u1": 100, "u2": 100, "u3": 100})

	for _, g := range []models.GiftRecord{
		{SenderId: "u1", ReceiverId: "u2", Amount: 10},
		{SenderId: "u1", ReceiverId: "u3", Amount: 20},
		{SenderId: "u2", ReceiverId: "u1", Amount: 5},
	} {
		gift := g
		_, err := store.TransferGift(context.Background(), &gift)
		require.NoError(t, err)
	}

	stats, err := store.GetGiftStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &models.GiftStats{
		Sent:     models.GiftTotals{Count: 2, Total: 30},
		Received: models.GiftTotals{Count: 1, Total: 5},
	}, stats)

	// A user with no activity gets zeroes, not an error.
	empty, err := store.GetGiftStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, &models.GiftStats{}, empty)
}

func TestListGiftsNewestFirst(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"u1": 100, "u2": 100})

	amounts := []int64{1, 2, 3}
	for _, amount := range amounts {
		_, err := store.TransferGift(context.Background(), &models.GiftRecord{
			SenderId: "u1", ReceiverId: "u2", Amount: amount,
		})
		require.NoError(t, err)
	}

	recent, err := store.ListRecentGifts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(3), recent[0].Amount)
	assert.Equal(t, int64(2), recent[1].Amount)

	sent, err := store.ListGiftsSent(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, sent, 3)
	assert.Equal(t, int64(3), sent[0].Amount)

	received, err := store.ListGiftsReceived(context.Background(), "u2", 10)
	require.NoError(t, err)
	require.Len(t, received, 3)

	none, err := store.ListGiftsSent(context.Background(), "u2", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLeaderboardOrderingAndTies(t *testing.T) {
	store := New()
	seedAccounts(t, store, map[string]int64{"u1": 1000, "u2": 1000, "u3": 1000})

	for _, g := range []models.GiftRecord{
		{SenderId: "u1", ReceiverId: "u2", Amount: 100},
		{SenderId: "u1", ReceiverId: "u3", Amount: 50},
		{SenderId: "u2", ReceiverId: "u3", Amount: 150},
		{SenderId: "u3", ReceiverId: "u1", Amount: 150},
	} {
		gift := g
		_, err := store.TransferGift(context.Background(), &gift)
		require.NoError(t, err)
	}

	senders, err := store.TopSenders(context.Background(), 10)
	require.NoError(t, err)
	// All three sent 150 total; the tie resolves by user id.
	assert.Equal(t, []models.LeaderboardRow{
		{UserId: "u1", Count: 2, Total: 150},
		{UserId: "u2", Count: 1, Total: 150},
		{UserId: "u3", Count: 1, Total: 150},
	}, senders)

	receivers, err := store.TopReceivers(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []models.LeaderboardRow{
		{UserId: "u3", Count: 2, Total: 200},
		{UserId: "u1", Count: 1, Total: 150},
	}, receivers)
}

func TestAccountLifecycle(t *testing.T) {
	store := New()

	created, err := store.CreateAccount(context.Background(), &models.Account{UserId: "u1", Balance: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	_, err = store.CreateAccount(context.Background(), &models.Account{UserId: "u1"})
	assert.ErrorIs(t, err, storage.ErrAccountExists)

	require.NoError(t, store.DeleteAccount(context.Background(), "u1"))
	assert.ErrorIs(t, store.DeleteAccount(context.Background(), "u1"), storage.ErrAccountNotFound)
	_, err = store.GetAccount(context.Background(), "u1")
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}
