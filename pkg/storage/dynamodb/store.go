package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sewalink/sewalink-functions/pkg/notify"
	"github.com/sewalink/sewalink-functions/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client surface used by Store.
// It exists so the store can be tested against a mockery-generated mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client            DynamoDBAPI
	Notifier          notify.Notifier
	AccountsTableName string
	GiftsTableName    string
}

// New creates a new Store. notifier may be nil when no event queue is
// configured.
func New(client DynamoDBAPI, notifier notify.Notifier, accountsTable, giftsTable string) *Store {
	return &Store{
		Client:            client,
		Notifier:          notifier,
		AccountsTableName: accountsTable,
		GiftsTableName:    giftsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
