package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/sewalink/sewalink-functions/pkg/handlers/images"
	"github.com/sewalink/sewalink-functions/pkg/imgbb"
)

var handler *images.ImagesHandler

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiKey := os.Getenv("IMGBB_API_KEY")
	if apiKey == "" {
		log.Fatal("IMGBB_API_KEY environment variable not set")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	handler = images.NewImagesHandler(imgbb.NewClient(apiKey), logger)
}

func main() {
	lambda.Start(handler.Upload)
}
