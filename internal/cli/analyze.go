package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvoronin/newsgauge/internal/analyze"
	"github.com/pvoronin/newsgauge/internal/model"
)

var (
	analyzeFile    string
	analyzeURL     string
	analyzeTitle   string
	analyzeSource  string
	analyzeEngine  string
	analyzeTimeout time.Duration
	analyzeNoGeo   bool
	analyzePretty  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze one article and print the report as JSON",
	Long: `Analyze runs the full report over a single article. The text comes
from the argument, a file (--file), stdin (--file -) or a fetched
URL (--url).

Example:
  newsgauge analyze "UN officials confirmed the ceasefire on Monday." --source reuters.com
  newsgauge analyze --file article.txt --title "Ceasefire Agreement Reached"
  newsgauge analyze --url https://www.bbc.com/news/world-europe-12345678`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "read article text from a file (- for stdin)")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "fetch and analyze the article at this URL")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "article title")
	analyzeCmd.Flags().StringVar(&analyzeSource, "source", "", "source name or domain, used for reputation lookup")
	analyzeCmd.Flags().StringVar(&analyzeEngine, "engine", "", "annotation engine (rules, remote, openai)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&analyzeNoGeo, "no-geo", false, "skip geocoding lookups")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "indent JSON output")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if analyzeEngine != "" {
		cfg.Annotate.Engine = analyzeEngine
	}
	if analyzeNoGeo {
		cfg.Geo.Enabled = false
	}

	logw := io.Discard
	if cfg.Output.Verbose {
		logw = os.Stderr
	}
	service, err := analyze.NewService(cfg, logw)
	if err != nil {
		return err
	}

	var report *model.Report
	switch {
	case analyzeURL != "":
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", analyzeURL)
		}
		report, err = service.AnalyzeURL(ctx, analyzeURL)
	default:
		article, readErr := readArticle(args)
		if readErr != nil {
			return readErr
		}
		report, err = service.Analyze(ctx, article)
	}
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	return writeReport(os.Stdout, report, analyzePretty || cfg.Output.Pretty)
}

// readArticle assembles the article from the positional argument or the
// --file flag.
func readArticle(args []string) (model.Article, error) {
	article := model.Article{Title: analyzeTitle, Source: analyzeSource}

	switch {
	case analyzeFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return model.Article{}, fmt.Errorf("read stdin: %w", err)
		}
		article.Text = string(data)
	case analyzeFile != "":
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return model.Article{}, fmt.Errorf("read file: %w", err)
		}
		article.Text = string(data)
	case len(args) == 1:
		article.Text = args[0]
	default:
		return model.Article{}, fmt.Errorf("no article text: pass it as an argument, --file or --url")
	}
	return article, nil
}

func writeReport(w io.Writer, report *model.Report, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
