package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/resisync/internal/cli"
	"github.com/alexanderramin/resisync/internal/db"
	"github.com/alexanderramin/resisync/internal/intelligence"
	"github.com/alexanderramin/resisync/internal/llm"
	"github.com/alexanderramin/resisync/internal/repository"
	"github.com/alexanderramin/resisync/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.resisync/resisync.db
	dbPath := os.Getenv("RESISYNC_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".resisync", "resisync.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	tripRepo := repository.NewSQLiteTripRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)

	// Optional use-case telemetry to stderr.
	var useCaseObs service.UseCaseObserver = service.NoopUseCaseObserver{}
	if on, _ := strconv.ParseBool(os.Getenv("RESISYNC_LOG_USECASES")); on {
		useCaseObs = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire the LLM client. The API key is checked per call, so the app
	// still opens without one and degrades to local approximation.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewGeminiClient(llmCfg, observer)

	app := &cli.App{
		Trips:      service.NewTripService(tripRepo, useCaseObs),
		Profile:    service.NewProfileService(profileRepo, useCaseObs),
		Simulation: service.NewSimulationOverlay(),

		Compliance: intelligence.NewComplianceService(llmClient),
		Insights:   intelligence.NewInsightService(llmClient, intelligence.NewInsightCache()),
		Parser:     intelligence.NewParserService(llmClient),
		Chat:       intelligence.NewChatService(llmClient),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
