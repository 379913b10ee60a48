package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sunshine-labs/sunshine/internal/api"
	"github.com/sunshine-labs/sunshine/internal/engine"
	"github.com/sunshine-labs/sunshine/internal/session"
	"github.com/sunshine-labs/sunshine/internal/store"
	"github.com/sunshine-labs/sunshine/internal/trained"
	"github.com/sunshine-labs/sunshine/internal/util"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for Sunshine state data
	DefaultStateDir = "/var/lib/sunshine"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "sunshine.db"
)

func main() {
	// Initialize structured logger
	initializeLogger()

	// Load environment configuration
	config := loadEnvironmentConfig()

	// Parse command line flags
	flags := parseCommandLineFlags(config)

	// Ensure required directories exist
	if err := ensureDirectoriesExist(flags); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	st, err := store.FromDSN(*flags.dbDSN)
	if err != nil {
		slog.Error("Failed to open store", "error", err, "dsn_set", *flags.dbDSN != "")
		os.Exit(1)
	}
	defer st.Close()

	engOpts := buildEngineOptions(flags)
	apiOpts := buildAPIOptions(flags)

	sessions := session.NewManager(st)
	eng := engine.New(sessions, engOpts...)
	srv := api.NewServer(eng, sessions, apiOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Bootstrapping Sunshine with configured modules")
	slog.Debug("Module options counts", "engine", len(engOpts), "api", len(apiOpts))
	slog.Debug("Final configuration", "dsn_set", *flags.dbDSN != "", "api_addr", *flags.apiAddr, "corpus_path", *flags.corpusPath)
	if err := srv.Run(ctx); err != nil {
		slog.Error("Sunshine failed to run", "error", err)
		os.Exit(1)
	}
	slog.Info("Sunshine exited successfully")
}

// Config holds environment configuration
type Config struct {
	DatabaseURL string
	StateDir    string
	APIAddr     string
	CorpusPath  string
	Debug       bool
}

// Flags holds command line flag values
type Flags struct {
	stateDir   *string
	dbDSN      *string
	apiAddr    *string
	corpusPath *string
}

// initializeLogger sets up structured logging. SUNSHINE_DEBUG=true lowers
// the level before flags are even parsed, so bootstrap logging is visible.
func initializeLogger() {
	level := slog.LevelInfo
	if util.ParseBoolEnv("SUNSHINE_DEBUG", false) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}

	config := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StateDir:    os.Getenv("SUNSHINE_STATE_DIR"),
		APIAddr:     os.Getenv("API_ADDR"),
		CorpusPath:  os.Getenv("SUNSHINE_CORPUS"),
		Debug:       util.ParseBoolEnv("SUNSHINE_DEBUG", false),
	}

	// Set default state directory if not specified
	if config.StateDir == "" {
		config.StateDir = DefaultStateDir
		slog.Debug("No SUNSHINE_STATE_DIR set, using default", "default_state_dir", config.StateDir)
	} else {
		slog.Debug("SUNSHINE_STATE_DIR found in environment", "state_dir", config.StateDir)
	}

	// If no database URL is provided, default to SQLite in the state directory
	if config.DatabaseURL == "" {
		config.DatabaseURL = filepath.Join(config.StateDir, DefaultDBFileName)
		slog.Debug("No database DSN provided, defaulting to SQLite", "sqlite_path", config.DatabaseURL)
	}

	slog.Debug("environment variables loaded",
		"DATABASE_URL_SET", os.Getenv("DATABASE_URL") != "",
		"SUNSHINE_STATE_DIR", config.StateDir,
		"API_ADDR", config.APIAddr,
		"SUNSHINE_CORPUS", config.CorpusPath,
		"SUNSHINE_DEBUG", config.Debug)

	return config
}

// parseCommandLineFlags parses command line arguments with environment defaults
func parseCommandLineFlags(config Config) Flags {
	flags := Flags{
		stateDir:   flag.String("state-dir", config.StateDir, "state directory for Sunshine data (overrides $SUNSHINE_STATE_DIR)"),
		dbDSN:      flag.String("db-dsn", config.DatabaseURL, "database DSN for the session store (overrides $DATABASE_URL)"),
		apiAddr:    flag.String("api-addr", config.APIAddr, "API server address (overrides $API_ADDR)"),
		corpusPath: flag.String("corpus", config.CorpusPath, "path to a trained response corpus JSON file (overrides $SUNSHINE_CORPUS)"),
	}

	flag.Parse()

	slog.Debug("flags parsed",
		"stateDir", *flags.stateDir,
		"dbDSN_set", *flags.dbDSN != "",
		"apiAddr", *flags.apiAddr,
		"corpusPath", *flags.corpusPath)

	// Update database DSN if not explicitly set but state directory is provided
	if *flags.dbDSN == config.DatabaseURL && config.DatabaseURL == filepath.Join(config.StateDir, DefaultDBFileName) && *flags.stateDir != config.StateDir {
		*flags.dbDSN = filepath.Join(*flags.stateDir, DefaultDBFileName)
		slog.Debug("Updated dbDSN based on state directory", "dsn_updated", true, "old_state_dir", config.StateDir, "new_state_dir", *flags.stateDir)
	}

	return flags
}

// ensureDirectoriesExist creates necessary directories for file-based storage
func ensureDirectoriesExist(flags Flags) error {
	// Ensure state directory exists if we're using a file-based DSN
	if !strings.HasPrefix(*flags.dbDSN, "postgres://") && !strings.HasPrefix(*flags.dbDSN, "postgresql://") {
		stateDir := filepath.Dir(*flags.dbDSN)
		slog.Debug("Creating state directory for file-based database", "state_dir", stateDir)
		if err := os.MkdirAll(stateDir, 0755); err != nil {
			slog.Error("Failed to create state directory", "error", err, "state_dir", stateDir)
			return err
		}
	}
	return nil
}

// buildEngineOptions constructs engine configuration options. A trained
// corpus that fails to load is reported and skipped rather than fatal:
// the built-in response catalog covers every path on its own.
func buildEngineOptions(flags Flags) []engine.Option {
	var engOpts []engine.Option
	if *flags.corpusPath != "" {
		corpus, err := trained.LoadFile(*flags.corpusPath)
		if err != nil {
			slog.Warn("Failed to load trained corpus, continuing without it", "error", err, "path", *flags.corpusPath)
		} else {
			slog.Info("Loaded trained corpus", "path", *flags.corpusPath, "entries", corpus.Size())
			engOpts = append(engOpts, engine.WithCorpus(corpus))
		}
	}
	return engOpts
}

// buildAPIOptions constructs API server configuration options
func buildAPIOptions(flags Flags) []api.Option {
	var apiOpts []api.Option
	if *flags.apiAddr != "" {
		apiOpts = append(apiOpts, api.WithAddr(*flags.apiAddr))
	}
	return apiOpts
}
