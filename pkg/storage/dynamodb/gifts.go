package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

const (
	senderIndex   = "sender_id-created_at-index"
	receiverIndex = "receiver_id-created_at-index"
	ledgerIndex   = "gsi1pk-created_at-index"
)

// GetGift retrieves a gift record from DynamoDB by its ID.
func (s *Store) GetGift(ctx context.Context, giftID string) (*models.GiftRecord, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": giftID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gift ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.GiftsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get gift from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("gift with ID %s: %w", giftID, storage.ErrGiftNotFound)
	}

	var gift models.GiftRecord
	if err := attributevalue.UnmarshalMap(result.Item, &gift); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gift: %w", err)
	}

	return &gift, nil
}

// ListRecentGifts retrieves the most recent gifts across all users via the
// full-ledger index, newest first.
func (s *Store) ListRecentGifts(ctx context.Context, limit int32) ([]models.GiftRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.GiftsTableName),
		IndexName:              aws.String(ledgerIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: giftsPartition},
		},
		ScanIndexForward: aws.Bool(false), // Sort by created_at in descending order
		Limit:            &limit,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for recent gifts: %w", err)
	}

	var gifts []models.GiftRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &gifts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gifts: %w", err)
	}

	return gifts, nil
}

// ListGiftsSent retrieves gifts sent by a user, newest first.
func (s *Store) ListGiftsSent(ctx context.Context, userID string, limit int32) ([]models.GiftRecord, error) {
	return s.queryGiftsByUser(ctx, senderIndex, "sender_id", userID, &limit)
}

// ListGiftsReceived retrieves gifts received by a user, newest first.
func (s *Store) ListGiftsReceived(ctx context.Context, userID string, limit int32) ([]models.GiftRecord, error) {
	return s.queryGiftsByUser(ctx, receiverIndex, "receiver_id", userID, &limit)
}

// queryGiftsByUser queries one of the per-user indexes, newest first. A nil
// limit walks every page, which the all-time stats aggregation relies on.
func (s *Store) queryGiftsByUser(ctx context.Context, index, keyAttr, userID string, limit *int32) ([]models.GiftRecord, error) {
	var gifts []models.GiftRecord
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.GiftsTableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String(fmt.Sprintf("%s = :userID", keyAttr)),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":userID": &types.AttributeValueMemberS{Value: userID},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             limit,
			ExclusiveStartKey: startKey,
		}

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query gifts by %s: %w", keyAttr, err)
		}

		var page []models.GiftRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gifts: %w", err)
		}
		gifts = append(gifts, page...)

		if limit != nil && int32(len(gifts)) >= *limit {
			return gifts[:*limit], nil
		}
		if result.LastEvaluatedKey == nil {
			return gifts, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// GetGiftStats computes the all-time sent/received totals for a user by
// walking both per-user indexes.
func (s *Store) GetGiftStats(ctx context.Context, userID string) (*models.GiftStats, error) {
	sent, err := s.queryGiftsByUser(ctx, senderIndex, "sender_id", userID, nil)
	if err != nil {
		return nil, err
	}
	received, err := s.queryGiftsByUser(ctx, receiverIndex, "receiver_id", userID, nil)
	if err != nil {
		return nil, err
	}

	stats := &models.GiftStats{}
	for _, gift := range sent {
		stats.Sent.Count++
		stats.Sent.Total += gift.Amount
	}
	for _, gift := range received {
		stats.Received.Count++
		stats.Received.Total += gift.Amount
	}
	return stats, nil
}

// TopSenders aggregates the whole ledger by sender.
func (s *Store) TopSenders(ctx context.Context, limit int32) ([]models.LeaderboardRow, error) {
	gifts, err := s.scanAllGifts(ctx)
	if err != nil {
		return nil, err
	}
	return aggregateLeaderboard(gifts, limit, func(g *models.GiftRecord) string { return g.SenderId }), nil
}

// TopReceivers aggregates the whole ledger by receiver.
func (s *Store) TopReceivers(ctx context.Context, limit int32) ([]models.LeaderboardRow, error) {
	gifts, err := s.scanAllGifts(ctx)
	if err != nil {
		return nil, err
	}
	return aggregateLeaderboard(gifts, limit, func(g *models.GiftRecord) string { return g.ReceiverId }), nil
}

// scanAllGifts walks the entire gifts table. Leaderboards are O(ledger size)
// by design; see the stats endpoints for the indexed per-user path.
func (s *Store) scanAllGifts(ctx context.Context) ([]models.GiftRecord, error) {
	var gifts []models.GiftRecord
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(s.GiftsTableName),
			ExclusiveStartKey: startKey,
		}

		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gifts table: %w", err)
		}

		var page []models.GiftRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gifts: %w", err)
		}
		gifts = append(gifts, page...)

		if result.LastEvaluatedKey == nil {
			return gifts, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// aggregateLeaderboard groups gifts by the key function, sums amount and
// counts records per group, and returns the top rows by total. Ties are
// broken by user id ascending so results are reproducible.
func aggregateLeaderboard(gifts []models.GiftRecord, limit int32, keyOf func(*models.GiftRecord) string) []models.LeaderboardRow {
	byUser := make(map[string]*models.LeaderboardRow)
	for i := range gifts {
		key := keyOf(&gifts[i])
		row, ok := byUser[key]
		if !ok {
			row = &models.LeaderboardRow{UserId: key}
			byUser[key] = row
		}
		row.Count++
		row.Total += gifts[i].Amount
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
