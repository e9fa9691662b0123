package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/placemate/placemate/internal/ai"
	"github.com/placemate/placemate/internal/ai/gemini"
	"github.com/placemate/placemate/internal/coverletter"
	"github.com/placemate/placemate/internal/logger"
	"github.com/placemate/placemate/internal/matching"
	"github.com/placemate/placemate/internal/notify"
	"github.com/placemate/placemate/internal/secrets"
	"github.com/placemate/placemate/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// bootstrap builds the logger and loads the config every command starts from.
func bootstrap() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	return logger, config
}

// setup wires the matching engine and its collaborators. The caller owns the
// returned store and must close it.
func setup(ctx context.Context, config *Config, logger *zap.Logger) (*matching.Engine, *store.Store, error) {
	databaseURL, err := resolveDatabaseURL(config)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"loading database url: %w (set PLACEMATE_DATABASE_URL_FILE environment variable or the 'database-url-file' key in the configuration file)",
			err,
		)
	}

	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}

	var generator ai.TextGenerator
	var timeout time.Duration
	var maxLogLength int

	if config.AI != nil && config.AI.Enabled {
		generator, err = newTextGenerator(ctx, config.AI, logger)
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("building text generator: %w", err)
		}
		timeout = config.AI.Gemini.Timeout
		maxLogLength = config.AI.Gemini.MaxLogLength
	}

	var semantic *matching.SemanticScorer
	if generator != nil {
		semantic = matching.NewSemanticScorer(generator, timeout, maxLogLength, logger)
	}

	matchCfg := &matching.Config{}
	if config.Match != nil {
		matchCfg.Limit = config.Match.Limit
		matchCfg.Concurrency = config.Match.Concurrency
	}

	engine := matching.NewEngine(matchCfg, &matching.Deps{
		Store:        st,
		Semantic:     semantic,
		CoverLetters: coverletter.New(generator, timeout, maxLogLength, logger),
		Notifier:     notify.NewLogNotifier(logger),
		Logger:       logger,
	})

	return engine, st, nil
}

func resolveDatabaseURL(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	urlFile := strings.TrimSpace(config.DatabaseURLFile)
	if urlFile == "" {
		urlFile = strings.TrimSpace(viper.GetString("database-url-file"))
	}

	if urlFile == "" {
		return "", errors.New("database url file is not configured")
	}

	return secrets.Load(secrets.Source{
		Name: "database url",
		File: urlFile,
	})
}

func newTextGenerator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.TextGenerator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}

func flagUUID(cmd *cobra.Command, name string) (uuid.UUID, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", name, value, err)
	}

	return id, nil
}
