package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvoronin/newsgauge/internal/analyze"
	"github.com/pvoronin/newsgauge/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple article URLs from a file in parallel",
	Long: `Batch reads URLs from a file (one per line, # comments allowed),
fetches and analyzes them concurrently, and writes one JSON report
per URL into the output directory.

Example:
  newsgauge batch urls.txt
  newsgauge batch urls.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./newsgauge-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if batchConcurrency > 0 {
		cfg.Concurrency.BatchWorkers = batchConcurrency
	}

	logw := io.Discard
	if cfg.Output.Verbose {
		logw = os.Stderr
	}
	service, err := analyze.NewService(cfg, logw)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(service, cfg.Concurrency.BatchWorkers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	success, failures := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.URL, result.Error)
			continue
		}
		success++

		path := filepath.Join(batchOutputDir, reportFilename(result.URL))
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write report: %v\n", result.URL, err)
			continue
		}
		writeErr := writeReport(f, result.Report, true)
		if closeErr := f.Close(); writeErr == nil {
			writeErr = closeErr
		}
		if writeErr != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write report: %v\n", result.URL, writeErr)
			continue
		}
		fmt.Fprintf(os.Stderr, "OK   %s -> %s\n", result.URL, path)
	}

	fmt.Fprintf(os.Stderr, "\n%d analyzed, %d failed, reports in %s\n", success, failures, batchOutputDir)
	if failures > 0 && success == 0 {
		return fmt.Errorf("all %d URLs failed", failures)
	}
	return nil
}

// reportFilename derives a filesystem-safe name from the URL.
func reportFilename(rawURL string) string {
	name := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
		name = parsed.Host + parsed.Path
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "?", "_", "&", "_", "=", "_", " ", "-")
	name = strings.Trim(replacer.Replace(name), "_")
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "report"
	}
	return name + ".json"
}
