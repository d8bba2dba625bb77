// Command migrate_currency converts stored USD amounts to Nepali Rupees.
// It is safe to re-run: already-converted records are skipped.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/sewalink/sewalink-functions/pkg/migration"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jobsTable := os.Getenv("DYNAMODB_JOBS_TABLE_NAME")
	usersTable := os.Getenv("DYNAMODB_USERS_TABLE_NAME")
	if jobsTable == "" || usersTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	migrator := migration.NewMigrator(dynamodb.NewFromConfig(awsCfg), jobsTable, usersTable, logger)

	result, err := migrator.Run(context.Background())
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	logger.Info("done",
		"jobs_migrated", result.JobsMigrated,
		"jobs_skipped", result.JobsSkipped,
		"users_migrated", result.UsersMigrated,
		"users_skipped", result.UsersSkipped)
}
