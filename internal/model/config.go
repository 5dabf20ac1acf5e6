package model

import "time"

// Config is the process-wide configuration. It is built once at startup and
// treated as read-only afterwards; every component receives the slice of it
// that it needs.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Annotate    AnnotateConfig    `yaml:"annotate" mapstructure:"annotate"`
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Geo         GeoConfig         `yaml:"geo" mapstructure:"geo"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls outbound article fetching.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls the fetch/geocode caches.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// AnnotateConfig selects and configures the annotation engine.
// Engine is one of "rules" (built-in, no external calls), "remote"
// (JSON/HTTP sidecar) or "openai".
type AnnotateConfig struct {
	Engine    string        `yaml:"engine" mapstructure:"engine"`
	RemoteURL string        `yaml:"remote_url" mapstructure:"remote_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Model     string        `yaml:"model" mapstructure:"model"`
}

// AnalysisConfig holds the tunables of the scoring stages.
type AnalysisConfig struct {
	TopWords         int      `yaml:"top_words" mapstructure:"top_words"`
	TopPhrases       int      `yaml:"top_phrases" mapstructure:"top_phrases"`
	SummaryMaxLength int      `yaml:"summary_max_length" mapstructure:"summary_max_length"`
	SummaryMinLength int      `yaml:"summary_min_length" mapstructure:"summary_min_length"`
	SummaryThreshold int      `yaml:"summary_threshold" mapstructure:"summary_threshold"`
	Categories       []string `yaml:"categories" mapstructure:"categories"`
}

// GeoConfig controls geocoding lookups.
type GeoConfig struct {
	Enabled       bool          `yaml:"enabled" mapstructure:"enabled"`
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RatePerSecond float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	CacheTTL      time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr          string  `yaml:"addr" mapstructure:"addr"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Pretty  bool `yaml:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns the built-in defaults. Flags, environment variables
// and the config file override these in that order of priority.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Newsgauge/0.1 (+https://github.com/pvoronin/newsgauge)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Annotate: AnnotateConfig{
			Engine:  "rules",
			Timeout: 30 * time.Second,
		},
		Analysis: AnalysisConfig{
			TopWords:         15,
			TopPhrases:       10,
			SummaryMaxLength: 150,
			SummaryMinLength: 30,
			SummaryThreshold: 100,
			Categories:       DefaultCategories(),
		},
		Geo: GeoConfig{
			Enabled:       true,
			BaseURL:       "https://nominatim.openstreetmap.org",
			Timeout:       5 * time.Second,
			RatePerSecond: 1, // Nominatim usage policy
			CacheTTL:      24 * time.Hour,
			UserAgent:     "newsgauge-geocoder",
		},
		Server: ServerConfig{
			Addr:          ":8080",
			RatePerSecond: 100,
			RateBurst:     200,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
	}
}

// DefaultCategories is the fixed zero-shot label set for news
// classification.
func DefaultCategories() []string {
	return []string{
		"military action",
		"diplomatic statement",
		"civilian impact",
		"protest",
		"economic news",
		"casualty report",
		"political development",
		"peace negotiation",
		"humanitarian crisis",
		"terrorism",
		"natural disaster",
		"election",
		"international agreement",
	}
}
