package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pvoronin/newsgauge/internal/model"
)

// URLAnalyzer runs the full analysis against the article behind a URL.
type URLAnalyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*model.Report, error)
}

// AnalyzeJob is one URL's worth of batch work.
type AnalyzeJob struct {
	URL      string
	Analyzer URLAnalyzer
}

// Execute runs the analysis and wraps the outcome for collection.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeURL(ctx, j.URL)
	return &AnalyzeResult{URL: j.URL, Report: report, Error: err}
}

// AnalyzeResult pairs a URL with its report or failure.
type AnalyzeResult struct {
	URL    string
	Report *model.Report
	Error  error
}

// GetError satisfies the pool Result interface.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor fans URL analyses out over a worker pool.
type BatchProcessor struct {
	analyzer    URLAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor with the given concurrency.
func NewBatchProcessor(analyzer URLAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessURLs analyzes the URLs concurrently. Result order follows
// completion, not submission.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*AnalyzeResult {
	if len(urls) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolContext(ctx, b.concurrency)
	pool.Start()

	for _, url := range urls {
		pool.Submit(&AnalyzeJob{URL: url, Analyzer: b.analyzer})
	}

	results := pool.Wait()
	out := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		out[i] = result.(*AnalyzeResult)
	}
	return out
}

// ProcessFile reads URLs from a file (one per line) and analyzes them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads one URL per line, skipping blanks, comments and
// duplicates.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return urls, nil
}
