package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"rabbithole/internal/domain"
	"rabbithole/internal/encyclopedia"
	"rabbithole/internal/gen"
	"rabbithole/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := gen.LoadConfig()

	generator, err := gen.NewTextGenerator(context.Background(), cfg, log)
	if err != nil {
		if errors.Is(err, gen.ErrMissingAPIKey) {
			return fmt.Errorf("no API key configured: set GEMINI_API_KEY (or OPENAI_API_KEY with RABBITHOLE_PROVIDER=openai)")
		}
		return err
	}

	app := &tui.App{
		Encyclopedia: encyclopedia.NewService(generator, log, cfg.ArtAttempts),
		Vocabulary:   domain.DefaultVocabulary(),
		Log:          log,
		Temperature:  cfg.Temperature,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return tui.NewRootCmd(app).Execute()
}

// newLogger builds the diagnostic logger. It writes to the file named by
// RABBITHOLE_LOG; with no file configured diagnostics are discarded, so
// log output never tears the alternate screen.
func newLogger() (*zap.Logger, func(), error) {
	path := os.Getenv("RABBITHOLE_LOG")
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	log, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return log, func() { _ = log.Sync() }, nil
}
