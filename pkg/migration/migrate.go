// Package migration implements the one-shot conversion of stored USD amounts
// to Nepali Rupees across the jobs and users tables.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sewalink/sewalink-functions/pkg/currency"
	"github.com/sewalink/sewalink-functions/pkg/models"
	"github.com/sewalink/sewalink-functions/pkg/storage/dynamodb"
)

// Migrator rescales job budgets and user hourly rates from USD to NPR.
// Each record is converted at most once: the conditional write refuses
// records that already carry a migration timestamp, so re-running the tool
// after a partial failure only touches the remainder.
type Migrator struct {
	Client         dynamodb.DynamoDBAPI
	JobsTableName  string
	UsersTableName string
	Rate           float64
	Logger         *slog.Logger
}

// NewMigrator creates a Migrator at the platform exchange rate.
func NewMigrator(client dynamodb.DynamoDBAPI, jobsTable, usersTable string, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		Client:         client,
		JobsTableName:  jobsTable,
		UsersTableName: usersTable,
		Rate:           currency.ExchangeRate,
		Logger:         logger,
	}
}

// Result summarizes one migration run.
type Result struct {
	JobsMigrated  int
	JobsSkipped   int
	UsersMigrated int
	UsersSkipped  int
}

// Run walks both tables and converts every unmigrated record.
func (m *Migrator) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := m.migrateJobs(ctx, result); err != nil {
		return result, err
	}
	if err := m.migrateUsers(ctx, result); err != nil {
		return result, err
	}

	m.Logger.Info("migration complete",
		"jobs_migrated", result.JobsMigrated,
		"jobs_skipped", result.JobsSkipped,
		"users_migrated", result.UsersMigrated,
		"users_skipped", result.UsersSkipped)
	return result, nil
}

func (m *Migrator) migrateJobs(ctx context.Context, result *Result) error {
	jobs, err := scanAll[models.Job](ctx, m.Client, m.JobsTableName)
	if err != nil {
		return fmt.Errorf("failed to scan jobs table: %w", err)
	}

	for i := range jobs {
		job := &jobs[i]
		// Records with no budget or an existing migration stamp are left
		// untouched, matching the original one-shot behavior.
		if job.Budget == 0 || job.MigratedAt != nil {
			result.JobsSkipped++
			continue
		}

		nprBudget := math.Round(job.Budget * m.Rate)
		migrated, err := m.convert(ctx, m.JobsTableName,
			map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: job.Id}},
			"SET budget = :amount, budget_usd = :usd, currency = :currency, migrated_at = :at",
			job.Budget, nprBudget)
		if err != nil {
			return fmt.Errorf("failed to migrate job %s: %w", job.Id, err)
		}
		if !migrated {
			result.JobsSkipped++
			continue
		}

		result.JobsMigrated++
		m.Logger.Info("job migrated", "id", job.Id, "usd", job.Budget, "npr", nprBudget)
	}
	return nil
}

func (m *Migrator) migrateUsers(ctx context.Context, result *Result) error {
	users, err := scanAll[models.UserProfile](ctx, m.Client, m.UsersTableName)
	if err != nil {
		return fmt.Errorf("failed to scan users table: %w", err)
	}

	for i := range users {
		user := &users[i]
		if user.HourlyRate == 0 || user.MigratedAt != nil {
			result.UsersSkipped++
			continue
		}

		nprRate := math.Round(user.HourlyRate * m.Rate)
		migrated, err := m.convert(ctx, m.UsersTableName,
			map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: user.UserId}},
			"SET hourly_rate = :amount, hourly_rate_usd = :usd, currency = :currency, migrated_at = :at",
			user.HourlyRate, nprRate)
		if err != nil {
			return fmt.Errorf("failed to migrate user %s: %w", user.UserId, err)
		}
		if !migrated {
			result.UsersSkipped++
			continue
		}

		result.UsersMigrated++
		m.Logger.Info("user migrated", "user_id", user.UserId, "usd", user.HourlyRate, "npr", nprRate)
	}
	return nil
}

// convert applies one conditional update. A false return means another run
// migrated the record between our scan and the write.
func (m *Migrator) convert(ctx context.Context, table string, key map[string]types.AttributeValue, expr string, usd, npr float64) (bool, error) {
	input := &awsdynamodb.UpdateItemInput{
		TableName:           aws.String(table),
		Key:                 key,
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String("attribute_not_exists(migrated_at)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", int64(npr))},
			":usd":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%g", usd)},
			":currency": &types.AttributeValueMemberS{Value: currency.Code},
			":at":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
	}

	if _, err := m.Client.UpdateItem(ctx, input); err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// scanAll pages through an entire table.
func scanAll[T any](ctx context.Context, client dynamodb.DynamoDBAPI, table string) ([]T, error) {
	var items []T
	var startKey map[string]types.AttributeValue

	for {
		result, err := client.Scan(ctx, &awsdynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []T
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		items = append(items, page...)

		if result.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
