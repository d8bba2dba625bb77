package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

// CreateAccount creates a new account record in DynamoDB.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.Version == 0 {
		account.Version = 1
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	// Marshal the account object for the Put operation.
	accountAV, err := attributevalue.MarshalMap(account)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                accountAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"), // Prevent overwriting existing accounts.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account for user ID %s: %w", account.UserId, storage.ErrAccountExists)
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return account, nil
}

// DeleteAccount deletes an account record from DynamoDB.
func (s *Store) DeleteAccount(ctx context.Context, userID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to marshal account user ID for deletion: %w", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(user_id)"), // Ensure the account exists before deleting.
	}

	_, err = s.Client.DeleteItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("account for user ID %s: %w", userID, storage.ErrAccountNotFound)
		}
		return fmt.Errorf("failed to delete account from DynamoDB: %w", err)
	}

	return nil
}

// GetAccount retrieves a user's account from DynamoDB by their user ID.
func (s *Store) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account user ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("account for user ID %s: %w", userID, storage.ErrAccountNotFound)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// ListAccounts retrieves all accounts from DynamoDB.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.AccountsTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts table: %w", err)
	}

	var accounts []models.Account
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &accounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
	}

	return accounts, nil
}
