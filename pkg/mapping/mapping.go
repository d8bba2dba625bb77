package mapping

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/sewalink/sewalink-functions/pkg/api"
	"github.com/sewalink/sewalink-functions/pkg/models"
)

// ToApiGift converts a domain GiftRecord to an API Gift model.
func ToApiGift(gift *models.GiftRecord) *api.Gift {
	// Records that predate UUID ids map to the zero UUID.
	id, _ := uuid.Parse(gift.Id)

	apiGift := &api.Gift{
		Id:         openapi_types.UUID(id),
		SenderId:   gift.SenderId,
		ReceiverId: gift.ReceiverId,
		Amount:     gift.Amount,
		GiftType:   string(gift.GiftType),
		CreatedAt:  gift.CreatedAt,
	}
	if gift.Message != "" {
		apiGift.Message = &gift.Message
	}
	return apiGift
}

// ToApiGifts converts a slice of domain GiftRecords to API Gift models.
func ToApiGifts(gifts []models.GiftRecord) []*api.Gift {
	apiGifts := make([]*api.Gift, len(gifts))
	for i := range gifts {
		apiGifts[i] = ToApiGift(&gifts[i])
	}
	return apiGifts
}

// ToDomainNewGift converts an API NewGift model to a domain GiftRecord.
// The store assigns the id and commit timestamp.
func ToDomainNewGift(newGift *api.NewGift) *models.GiftRecord {
	gift := &models.GiftRecord{
		SenderId:   newGift.SenderId,
		ReceiverId: newGift.ReceiverId,
		Amount:     newGift.Amount,
		GiftType:   models.GiftTypeGeneral,
	}
	if newGift.Message != nil {
		gift.Message = *newGift.Message
	}
	if newGift.GiftType != nil && *newGift.GiftType != "" {
		gift.GiftType = models.GiftType(*newGift.GiftType)
	}
	return gift
}

// ToApiAccount converts a domain Account model to an API Account model.
// The version attribute is a storage concern and is not exposed.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		UserId:      account.UserId,
		DisplayName: account.DisplayName,
		Balance:     account.Balance,
		CreatedAt:   account.CreatedAt,
	}
}

// ToDomainNewAccount converts an API NewAccount model to a domain Account
// model with its optimistic-concurrency version initialized.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		UserId:      newAccount.UserId,
		DisplayName: newAccount.DisplayName,
		Balance:     newAccount.Balance,
		Version:     1,
	}
}

// ToApiGiftStats converts domain gift stats to the API model.
func ToApiGiftStats(stats *models.GiftStats) *api.GiftStats {
	return &api.GiftStats{
		Sent:     api.GiftTotals{Count: stats.Sent.Count, Total: stats.Sent.Total},
		Received: api.GiftTotals{Count: stats.Received.Count, Total: stats.Received.Total},
	}
}

// ToApiLeaderboard converts domain leaderboard rows to API entries.
func ToApiLeaderboard(rows []models.LeaderboardRow) []*api.LeaderboardEntry {
	entries := make([]*api.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = &api.LeaderboardEntry{UserId: row.UserId, Count: row.Count, Total: row.Total}
	}
	return entries
}
