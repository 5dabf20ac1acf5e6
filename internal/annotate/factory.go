package annotate

import (
	"fmt"
	"strings"

	"github.com/pvoronin/newsgauge/internal/lexicon"
	"github.com/pvoronin/newsgauge/internal/model"
)

// NewProvider builds the annotation provider for the configured engine.
//
// "rules" runs everything in-process; classification and summarization are
// unavailable and degrade per stage. "remote" sends all capabilities to the
// NLP sidecar. "openai" keeps annotation and polarity in-process and backs
// classification and summarization with a chat model.
func NewProvider(cfg model.AnnotateConfig, stops *lexicon.Stopwords) (Provider, error) {
	engine := strings.ToLower(cfg.Engine)
	rules := NewRuleEngine(stops)

	switch engine {
	case "", "rules":
		return Provider{Annotator: rules, Polarity: rules}, nil

	case "remote":
		if cfg.RemoteURL == "" {
			return Provider{}, fmt.Errorf("remote annotation engine requires annotate.remote_url")
		}
		remote := NewRemoteEngine(cfg.RemoteURL, cfg.Timeout)
		return Provider{
			Annotator:  remote,
			Polarity:   remote,
			Classifier: remote,
			Summarizer: remote,
		}, nil

	case "openai":
		ai, err := NewOpenAIEngine(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return Provider{}, err
		}
		return Provider{
			Annotator:  rules,
			Polarity:   rules,
			Classifier: ai,
			Summarizer: ai,
		}, nil

	default:
		return Provider{}, fmt.Errorf("unknown annotation engine: %s (supported: rules, remote, openai)", cfg.Engine)
	}
}
