package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ArowuTest/newslens-backend/internal/config"
	mongorepo "github.com/ArowuTest/newslens-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/newslens-backend/internal/services"
	"github.com/ArowuTest/newslens-backend/internal/utils"
	"github.com/ArowuTest/newslens-backend/pkg/mongodb"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Imports interactions from a CSV file into MongoDB
func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	flags := flag.NewFlagSet("import", flag.ContinueOnError)
	flags.SetOutput(stderr)
	batchSize := flags.Int("batch", 500, "interactions per write")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() < 1 {
		logger.Println("CSV file path is required as a command line argument")
		return exitUsage
	}
	csvFilePath := flags.Arg(0)

	if err := godotenv.Load(); err != nil {
		logger.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Printf("Failed to load configuration: %v", err)
		return exitError
	}

	file, err := os.Open(csvFilePath)
	if err != nil {
		logger.Printf("Failed to open CSV file: %v", err)
		return exitError
	}
	defer file.Close()

	ctx := context.Background()

	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		logger.Printf("Failed to connect to MongoDB: %v", err)
		return exitError
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		logger.Printf("Failed to ensure indexes: %v", err)
		return exitError
	}

	interactionService := services.NewInteractionService(
		mongorepo.NewInteractionRepository(db),
		mongorepo.NewUserRepository(db),
	)

	report, err := utils.NewCSVImporter(interactionService, *batchSize).ImportInteractions(ctx, file)
	for _, rowErr := range report.Errors {
		logger.Printf("Warning: skipped %v", rowErr)
	}
	if err != nil {
		logger.Printf("Failed to import data after %d interactions: %v", report.Imported, err)
		return exitError
	}

	logger.Printf("Imported %d interactions, skipped %d rows", report.Imported, report.Skipped)
	return exitOK
}
