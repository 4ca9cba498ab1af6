package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ripcody/VocabularyApp/internal/bootstrap"
	"github.com/ripcody/VocabularyApp/internal/config"
	"github.com/ripcody/VocabularyApp/internal/database"
	"github.com/ripcody/VocabularyApp/internal/dictionary"
	"github.com/ripcody/VocabularyApp/internal/dictionary/wordsapi"
	"github.com/ripcody/VocabularyApp/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "vocabulary-server",
		Short:         "Word definition lookup HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	repository := dictionary.NewDBWordRepository(db)
	provider := wordsapi.NewClient(wordsapi.Config{
		Host:       cfg.WordsAPI.Host,
		Key:        cfg.WordsAPI.Key,
		Timeout:    time.Duration(cfg.WordsAPI.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.WordsAPI.MaxRetries,
	})
	service := dictionary.NewService(repository, provider, logger)

	handler, err := server.NewWordHandler(service, logger)
	if err != nil {
		return fmt.Errorf("server.NewWordHandler() > %w", err)
	}
	mux := server.NewRouter(handler, db, logger)

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(
			server.RequestLogger(h2c.NewHandler(mux, &http2.Server{}), logger),
			cfg.Server.CORS.AllowedOrigins,
		),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
