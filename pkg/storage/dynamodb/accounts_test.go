package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage"
	"github.com/sewalink/sewalink-functions/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateAccount(t *testing.T) {
	account := &models.Account{UserId: "test-user", Balance: 100}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, nil, "accounts", "gifts")
		createdAccount, err := store.CreateAccount(context.Background(), account)

		assert.NoError(t, err)
		assert.Equal(t, account, createdAccount)
		assert.Equal(t, int64(1), createdAccount.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, nil, "accounts", "gifts")
		_, err := store.CreateAccount(context.Background(), account)

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrAccountExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "gifts")
		_, err := store.CreateAccount(context.Background(), account)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create account in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestDeleteAccount(t *testing.T) {
	userID := "test-user"

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil)

		store := New(mockClient, nil, "accounts", "gifts")
		err := store.DeleteAccount(context.Background(), userID)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, nil, "accounts", "gifts")
		err := store.DeleteAccount(context.Background(), userID)

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "gifts")
		err := store.DeleteAccount(context.Background(), userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete account from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestGetAccount(t *testing.T) {
	userID := "test-user"
	account := &models.Account{UserId: userID, Balance: 100, Version: 1}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		store := New(mockClient, nil, "accounts", "gifts")
		retrievedAccount, err := store.GetAccount(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, account, retrievedAccount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, nil, "accounts", "gifts")
		_, err := store.GetAccount(context.Background(), userID)

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "gifts")
		_, err := store.GetAccount(context.Background(), userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get account from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestListAccounts(t *testing.T) {
	accounts := []models.Account{{UserId: "test-user-1"}, {UserId: "test-user-2"}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var accountsAV []map[string]types.AttributeValue
		for _, a := range accounts {
			av, err := attributevalue.MarshalMap(a)
			assert.NoError(t, err)
			accountsAV = append(accountsAV, av)
		}
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: accountsAV}, nil)

		store := New(mockClient, nil, "accounts", "gifts")
		retrievedAccounts, err := store.ListAccounts(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, accounts, retrievedAccounts)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "gifts")
		_, err := store.ListAccounts(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan accounts table")
		mockClient.AssertExpectations(t)
	})
}
