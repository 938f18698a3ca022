package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openrag/wikifetch/internal/config"
	"github.com/openrag/wikifetch/internal/edition"
	"github.com/openrag/wikifetch/internal/fetch"
	"github.com/openrag/wikifetch/internal/logging"
	"github.com/openrag/wikifetch/internal/source"

	// Register source implementations.
	_ "github.com/openrag/wikifetch/internal/source/huggingface"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		sizeMB   float64
		articles int
		lang     string
		output   string
		split    string
	)

	cmd := &cobra.Command{
		Use:   "wikifetch",
		Short: "Fetch Wikipedia articles into RAG-ready JSON files",
		Long: `wikifetch streams articles from the wikimedia/wikipedia dataset and
saves each one as an individual JSON file until a size or article budget
is reached. Interrupting a run (Ctrl-C) finalizes with partial results.`,
		Example: `  # Fetch ~10MB of articles
  wikifetch --size-mb 10

  # Fetch exactly 2000 articles from English Wikipedia
  wikifetch --articles 2000 --lang en

  # Save to a different directory
  wikifetch --size-mb 10 --output custom/path`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd.Context(), cfg, fetch.Budget{SizeMB: sizeMB, Articles: articles}, lang, output, split)
		},
	}

	cmd.Flags().Float64Var(&sizeMB, "size-mb", 0, "target dataset size in megabytes (approximate)")
	cmd.Flags().IntVar(&articles, "articles", 0, "target number of articles to fetch")
	cmd.Flags().StringVar(&lang, "lang", cfg.Fetch.Language,
		fmt.Sprintf("Wikipedia language edition %v", edition.Codes()))
	cmd.Flags().StringVar(&output, "output", cfg.Fetch.OutputDir, "output directory for article files")
	cmd.Flags().StringVar(&split, "split", cfg.Fetch.Split, "dataset split to use")
	cmd.MarkFlagsMutuallyExclusive("size-mb", "articles")
	cmd.MarkFlagsOneRequired("size-mb", "articles")

	return cmd
}

func runFetch(ctx context.Context, cfg config.Config, budget fetch.Budget, lang, output, split string) error {
	ed, err := edition.Parse(lang)
	if err != nil {
		return err
	}

	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		return err
	}
	src, err := ctor(source.Config{
		Edition:  ed,
		Split:    split,
		Endpoint: cfg.Source.Endpoint,
		APIToken: cfg.Source.APIToken,
		PageSize: cfg.Source.PageSize,
	})
	if err != nil {
		return err
	}

	log := slog.Default().With("run_id", uuid.NewString())
	log.Info("starting fetch",
		"provider", cfg.Source.Provider,
		"edition", ed.DisplayName(),
		"split", split,
		"output", output,
	)

	_, err = fetch.Run(ctx, src, fetch.Options{
		Budget:    budget,
		OutputDir: output,
		Language:  ed.Code,
		Logger:    log,
	})
	return err
}
