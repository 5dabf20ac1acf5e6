package annotate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteEngine talks JSON over HTTP to an NLP sidecar service that hosts
// the heavyweight models (tagger, NER, polarity, zero-shot classifier,
// summarizer). It implements every provider capability; the sidecar is
// expected to expose /annotate, /polarity, /classify and /summarize.
type RemoteEngine struct {
	client *resty.Client
}

// NewRemoteEngine creates a client for the sidecar at baseURL.
func NewRemoteEngine(baseURL string, timeout time.Duration) *RemoteEngine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &RemoteEngine{client: client}
}

type remoteTextRequest struct {
	Text string `json:"text"`
}

type remoteClassifyRequest struct {
	Text   string   `json:"text"`
	Labels []string `json:"labels"`
}

type remoteSummarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

type remoteError struct {
	Detail string `json:"detail"`
}

// Annotate requests the token/sentence/entity view from the sidecar.
func (r *RemoteEngine) Annotate(ctx context.Context, text string) (*Doc, error) {
	var doc Doc
	if err := r.post(ctx, "/annotate", remoteTextRequest{Text: text}, &doc); err != nil {
		return nil, err
	}
	if doc.Text == "" {
		doc.Text = text
	}
	return &doc, nil
}

// Polarity requests the sentiment tuple from the sidecar.
func (r *RemoteEngine) Polarity(ctx context.Context, text string) (Polarity, error) {
	var p Polarity
	if err := r.post(ctx, "/polarity", remoteTextRequest{Text: text}, &p); err != nil {
		return Polarity{}, err
	}
	return p, nil
}

// Classify requests zero-shot label scores from the sidecar.
func (r *RemoteEngine) Classify(ctx context.Context, text string, labels []string) (map[string]float64, error) {
	var scores map[string]float64
	req := remoteClassifyRequest{Text: text, Labels: labels}
	if err := r.post(ctx, "/classify", req, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// Summarize requests an abstractive summary from the sidecar.
func (r *RemoteEngine) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	req := remoteSummarizeRequest{Text: text, MaxLength: maxLength, MinLength: minLength}
	if err := r.post(ctx, "/summarize", req, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

func (r *RemoteEngine) post(ctx context.Context, path string, body, result any) error {
	var apiErr remoteError
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("annotation service %s: %w", path, err)
	}
	if resp.IsError() {
		if apiErr.Detail != "" {
			return fmt.Errorf("annotation service %s: %s (HTTP %d)", path, apiErr.Detail, resp.StatusCode())
		}
		return fmt.Errorf("annotation service %s: HTTP %d", path, resp.StatusCode())
	}
	return nil
}
