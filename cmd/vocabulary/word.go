package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ripcody/VocabularyApp/internal/config"
	"github.com/ripcody/VocabularyApp/internal/database"
	"github.com/ripcody/VocabularyApp/internal/dictionary"
	"github.com/ripcody/VocabularyApp/internal/dictionary/wordsapi"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON}
)

func newLookupCommand() *cobra.Command {
	output := OutputFormatText
	command := &cobra.Command{
		Use:   "lookup [word]",
		Short: "Look up a word, falling back to the external dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closer, err := newWordService()
			if err != nil {
				return err
			}
			defer closer()

			result, err := service.Lookup(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("service.Lookup > %w", err)
			}
			if !result.Found {
				color.Yellow("%s", result.Message)
				return nil
			}
			return showRecords(output, *result.Entry)
		},
	}
	command.Flags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func newSearchCommand() *cobra.Command {
	output := OutputFormatText
	maxResults := 50
	command := &cobra.Command{
		Use:   "search [term]",
		Short: "Search locally stored words by partial match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closer, err := newWordService()
			if err != nil {
				return err
			}
			defer closer()

			records, err := service.Search(cmd.Context(), args[0], maxResults)
			if err != nil {
				return fmt.Errorf("service.Search > %w", err)
			}
			if len(records) == 0 {
				color.Yellow("no words matched %q", args[0])
				return nil
			}
			return showRecords(output, records...)
		},
	}
	command.Flags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	command.Flags().IntVar(&maxResults, "max-results", 50, "Maximum number of results")
	return command
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics of the local word store",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closer, err := newWordService()
			if err != nil {
				return err
			}
			defer closer()

			stats, err := service.GetStatistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.GetStatistics > %w", err)
			}
			showStatistics(stats)
			return nil
		},
	}
}

func newWordService() (dictionary.WordService, func(), error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open > %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	provider := wordsapi.NewClient(wordsapi.Config{
		Host:       cfg.WordsAPI.Host,
		Key:        cfg.WordsAPI.Key,
		Timeout:    time.Duration(cfg.WordsAPI.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.WordsAPI.MaxRetries,
	})
	service := dictionary.NewService(dictionary.NewDBWordRepository(db), provider, logger)

	return service, func() { _ = db.Close() }, nil
}

func showRecords(output OutputFormat, records ...dictionary.WordRecord) error {
	if output == OutputFormatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	for _, record := range records {
		if record.Phonetic != "" {
			color.Cyan("%s /%s/", record.Word, record.Phonetic)
		} else {
			color.Cyan("%s", record.Word)
		}
		for i, sense := range record.Senses {
			fmt.Printf("%d: [%s] %s\n", i+1, sense.PartOfSpeech, sense.Definition)
			if sense.Example != "" {
				fmt.Printf("   e.g. %s\n", sense.Example)
			}
		}
	}
	return nil
}

func showStatistics(stats dictionary.Statistics) {
	color.Cyan("total words: %d", stats.TotalWords)
	if stats.LastUpdatedAt != nil {
		fmt.Printf("last updated: %s\n", stats.LastUpdatedAt.Format(time.RFC3339))
	}

	fmt.Println("by part of speech:")
	for _, name := range sortedKeys(stats.ByPartOfSpeech) {
		fmt.Printf("  %s: %d\n", name, stats.ByPartOfSpeech[name])
	}
	fmt.Println("by source:")
	for _, name := range sortedKeys(stats.BySourceType) {
		fmt.Printf("  %s: %d\n", name, stats.BySourceType[name])
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
