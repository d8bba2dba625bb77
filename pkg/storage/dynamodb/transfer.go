package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

const (
	// maxTransferAttempts bounds the optimistic retry loop. DynamoDB does not
	// re-run conflicting transactions the way Firestore does, so the conflict
	// retry lives here.
	maxTransferAttempts = 5

	// transferBackoffBase is the first retry delay; it doubles per attempt.
	transferBackoffBase = 25 * time.Millisecond

	// giftsPartition is the constant partition key of the newest-first
	// full-ledger index.
	giftsPartition = "GIFTS"
)

// TransferGift atomically moves gift.Amount from the sender's account to the
// receiver's account and writes the gift record, all in one transaction.
// Validation runs against account state read inside the current attempt, so
// two concurrent transfers from the same sender cannot both pass the funds
// check and commit.
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

	// Complete the gift record with server-side details.
	gift.Id = uuid.New().String()
	gift.CreatedAt = time.Now()
	gift.GSI1PK = giftsPartition

	giftAV, err := attributevalue.MarshalMap(gift)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gift record: %w", err)
	}

	backoff := transferBackoffBase
	for attempt := 0; attempt < maxTransferAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		committed, err := s.attemptTransfer(ctx, gift, giftAV)
		if err != nil {
			return nil, err
		}
		if !committed {
			continue
		}

		if s.Notifier != nil {
			if err := s.Notifier.GiftSent(ctx, gift); err != nil {
				log.Printf("gift %s committed but event publish failed: %v", gift.Id, err)
			}
		}
		return gift, nil
	}

	return nil, storage.ErrTransferConflict
}

// attemptTransfer runs one optimistic round: read both accounts, validate
// against the balances just read, then commit debit + credit + gift record
// in a single TransactWriteItems guarded by the version values from the
// read. A false return means another writer invalidated a version and the
// round must be retried with fresh state.
func (s *Store) attemptTransfer(ctx context.Context, gift *models.GiftRecord, giftAV map[string]types.AttributeValue) (bool, error) {
	// 1. Read both accounts, capturing their versions.
	sender, err := s.GetAccount(ctx, gift.SenderId)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return false, fmt.Errorf("sender: %w", storage.ErrAccountNotFound)
		}
		return false, fmt.Errorf("failed to get sender account: %w", err)
	}
	receiver, err := s.GetAccount(ctx, gift.ReceiverId)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return false, fmt.Errorf("receiver: %w", storage.ErrAccountNotFound)
		}
		return false, fmt.Errorf("failed to get receiver account: %w", err)
	}

	// 2. Re-validate funds against the balance from this round's read, not
	// anything cached before the transfer started.
	if sender.Balance < gift.Amount {
		return false, storage.ErrInsufficientFunds
	}

	amountAV, err := attributevalue.Marshal(gift.Amount)
	if err != nil {
		return false, fmt.Errorf("failed to marshal amount: %w", err)
	}

	// 3. Construct the TransactWriteItems input. The version conditions
	// ensure neither account changed since the read above.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Debit the sender's account.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: gift.SenderId},
					},
					UpdateExpression:    aws.String("SET balance = balance - :amount, version = version + :inc"),
					ConditionExpression: aws.String("attribute_exists(user_id) AND balance >= :amount AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", sender.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 2: Credit the receiver's account.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: gift.ReceiverId},
					},
					UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc"),
					ConditionExpression: aws.String("attribute_exists(user_id) AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", receiver.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 3: Create the gift record.
				Put: &types.Put{
					TableName:           aws.String(s.GiftsTableName),
					Item:                giftAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	// 4. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if isRetryableConflict(err) {
			// Another transfer touched one of the accounts between our read
			// and the commit. Retry with fresh state; the funds check re-runs
			// against the new balance.
			return false, nil
		}
		return false, fmt.Errorf("failed to execute transfer transaction: %w", err)
	}

	return true, nil
}

// isRetryableConflict reports whether a TransactWriteItems failure means a
// concurrent writer won the race. DynamoDB signals this three ways: a
// cancellation reason of ConditionalCheckFailed (our version condition lost),
// a cancellation reason of TransactionConflict (another transaction held one
// of the items), or a bare TransactionConflictException /
// TransactionInProgressException.
func isRetryableConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code == nil {
				continue
			}
			switch *reason.Code {
			case "ConditionalCheckFailed", "TransactionConflict":
				return true
			}
		}
		return false
	}

	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return true
	}
	var inProgress *types.TransactionInProgressException
	return errors.As(err, &inProgress)
}
