package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/highlighter/chunking"
	"github.com/sevigo/highlighter/config"
	"github.com/sevigo/highlighter/highlights"
	"github.com/sevigo/highlighter/mcpserver"
	"github.com/sevigo/highlighter/pipeline"
	"github.com/sevigo/highlighter/schema"
	"github.com/sevigo/highlighter/store"
)

var (
	cfgFile       string
	rootDir       string
	verbose       bool
	maxHighlights int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "highlighter",
	Short: "Document highlighter - chunk documents and rank the pieces against a query",
	Long: `Highlighter extracts text from documents in a local store, splits it into
length-bounded chunks, and asks the highlights ranking service for the
fragments most relevant to a query.

Without a HIGHLIGHTS_API_KEY it still runs, returning clearly labeled
simulated highlights.`,
}

// serveCmd starts the MCP server on stdio.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document tools over MCP on stdio",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, p, err := buildPipeline()
		if err != nil {
			return err
		}
		return mcpserver.NewServer(p, logger).Serve(cmd.Context())
	},
}

// highlightsCmd runs the pipeline once and prints the result.
var highlightsCmd = &cobra.Command{
	Use:   "highlights <file-id> <query>",
	Short: "Print the most relevant highlights of a document for a query",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := buildPipeline()
		if err != nil {
			return err
		}
		fmt.Println(p.FileHighlights(cmd.Context(), args[0], args[1], maxHighlights))
		return nil
	},
}

func buildPipeline() (*slog.Logger, *pipeline.Pipeline, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Load(logger)
	if cfgFile != "" {
		if err := cfg.MergeFile(cfgFile, logger); err != nil {
			return nil, nil, err
		}
	}
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if maxHighlights <= 0 {
		maxHighlights = cfg.MaxHighlights
	}

	docStore, err := store.NewFS(cfg.Root, store.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	ranker := highlights.New(
		highlights.WithAPIKey(cfg.APIKey),
		highlights.WithBaseURL(cfg.BaseURL),
		highlights.WithLogger(logger),
	)

	var chunker schema.Chunker = chunking.NewTiered()
	if cfg.MaxChunkSize > 0 {
		chunker = chunking.NewTiered(chunking.WithMaxChunkSize(cfg.MaxChunkSize))
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithChunker(chunker),
	}
	if cfg.TopN > 0 {
		opts = append(opts, pipeline.WithTopN(cfg.TopN))
	}
	return logger, pipeline.New(docStore, ranker, opts...), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file path")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "document store root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	highlightsCmd.Flags().IntVar(&maxHighlights, "max", 0, "maximum number of highlights (default from config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(highlightsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
