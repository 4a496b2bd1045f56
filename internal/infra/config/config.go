package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	FAQ           FAQConfig           `yaml:"faq"`
	KnowledgeBase KnowledgeBaseConfig `yaml:"knowledgeBase"`
	Admin         AdminConfig         `yaml:"admin"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// FAQConfig controls answer selection.
type FAQConfig struct {
	MinConfidence float64       `yaml:"minConfidence"`
	FallbackZh    string        `yaml:"fallbackZh"`
	FallbackJa    string        `yaml:"fallbackJa"`
	Weights       WeightsConfig `yaml:"weights"`
}

// WeightsConfig exposes the similarity weights for tuning.
type WeightsConfig struct {
	KeywordSubstring float64 `yaml:"keywordSubstring"`
	PromptSubstring  float64 `yaml:"promptSubstring"`
	KeywordToken     float64 `yaml:"keywordToken"`
	PromptOverlap    float64 `yaml:"promptOverlap"`
	TokenSetMember   float64 `yaml:"tokenSetMember"`
	LCS              float64 `yaml:"lcs"`
	LengthDivisor    float64 `yaml:"lengthDivisor"`
	LengthExponent   float64 `yaml:"lengthExponent"`
}

// KnowledgeBaseConfig lists where FAQ entries are loaded from, in priority order:
// postgres, valkey, object storage, data dir file, bundled file, built-in defaults.
type KnowledgeBaseConfig struct {
	DataDir        string              `yaml:"dataDir"`
	BundledPath    string              `yaml:"bundledPath"`
	ReloadInterval time.Duration       `yaml:"reloadInterval"`
	LoadTimeout    time.Duration       `yaml:"loadTimeout"`
	Watch          bool                `yaml:"watch"`
	WatchDebounce  time.Duration       `yaml:"watchDebounce"`
	Postgres       PostgresConfig      `yaml:"postgres"`
	Valkey         ValkeyConfig        `yaml:"valkey"`
	ObjectStorage  ObjectStorageConfig `yaml:"objectStorage"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Table    string `yaml:"table"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig points at a JSON document holding the entries.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Key     string `yaml:"key"`
}

// ObjectStorageConfig points at an S3-compatible object holding the entries.
type ObjectStorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// AdminConfig guards the knowledge base admin endpoints.
type AdminConfig struct {
	Enabled bool   `yaml:"enabled"`
	Secret  string `yaml:"secret"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.KnowledgeBase.DataDir = v
	}
	if v := os.Getenv("KB_BUNDLED_PATH"); v != "" {
		cfg.KnowledgeBase.BundledPath = v
	}
	if v := os.Getenv("KB_RELOAD_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.KnowledgeBase.ReloadInterval = parsed
		}
	}
	if v := os.Getenv("KB_WATCH"); v != "" {
		cfg.KnowledgeBase.Watch = parseBool(v)
	}
	if v := os.Getenv("KB_WATCH_DEBOUNCE"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.KnowledgeBase.WatchDebounce = parsed
		}
	}
	if v := os.Getenv("KB_LOAD_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.KnowledgeBase.LoadTimeout = parsed
		}
	}
	if v := os.Getenv("KB_POSTGRES_DSN"); v != "" {
		cfg.KnowledgeBase.Postgres.DSN = v
	}
	if v := os.Getenv("KB_POSTGRES_TABLE"); v != "" {
		cfg.KnowledgeBase.Postgres.Table = v
	}
	if v := os.Getenv("KB_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.KnowledgeBase.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("KB_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.KnowledgeBase.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("KB_VALKEY_ENABLED"); v != "" {
		cfg.KnowledgeBase.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("KB_VALKEY_ADDR"); v != "" {
		cfg.KnowledgeBase.Valkey.Addr = v
	}
	if v := os.Getenv("KB_VALKEY_KEY"); v != "" {
		cfg.KnowledgeBase.Valkey.Key = v
	}
	if v := os.Getenv("KB_OBJECT_ENABLED"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.Enabled = parseBool(v)
	}
	if v := os.Getenv("KB_OBJECT_ENDPOINT"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.Endpoint = v
	}
	if v := os.Getenv("KB_OBJECT_ACCESS_KEY"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.AccessKey = v
	}
	if v := os.Getenv("KB_OBJECT_SECRET_KEY"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.SecretKey = v
	}
	if v := os.Getenv("KB_OBJECT_BUCKET"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.Bucket = v
	}
	if v := os.Getenv("KB_OBJECT_REGION"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.Region = v
	}
	if v := os.Getenv("KB_OBJECT_KEY"); v != "" {
		cfg.KnowledgeBase.ObjectStorage.Key = v
	}
	if v := os.Getenv("FAQ_MIN_CONFIDENCE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FAQ.MinConfidence = parsed
		}
	}
	if v := os.Getenv("FAQ_FALLBACK_ZH"); v != "" {
		cfg.FAQ.FallbackZh = v
	}
	if v := os.Getenv("FAQ_FALLBACK_JA"); v != "" {
		cfg.FAQ.FallbackJa = v
	}
	if v := os.Getenv("ADMIN_ENABLED"); v != "" {
		cfg.Admin.Enabled = parseBool(v)
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		cfg.Admin.Secret = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":9594",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     false,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/admin",
				},
			},
		},
		FAQ: FAQConfig{
			MinConfidence: 0,
			FallbackZh:    "抱歉，我无法回答您的问题。请尝试使用不同的表述，或通过官方渠道联系我们。",
			FallbackJa:    "申し訳ありませんが、お問い合わせの内容に対する回答が見つかりませんでした。別の言い方で質問してみるか、公式チャンネルからお問い合わせください。",
			Weights: WeightsConfig{
				KeywordSubstring: 5,
				PromptSubstring:  3,
				KeywordToken:     2,
				PromptOverlap:    2,
				TokenSetMember:   0.5,
				LCS:              2,
				LengthDivisor:    20,
				LengthExponent:   0.5,
			},
		},
		KnowledgeBase: KnowledgeBaseConfig{
			BundledPath:   "data/qa-database.json",
			LoadTimeout:   5 * time.Second,
			WatchDebounce: 500 * time.Millisecond,
			Postgres: PostgresConfig{
				Table:    "faq_entries",
				MaxConns: 4,
			},
			Valkey: ValkeyConfig{
				Key: "faq:entries",
			},
			ObjectStorage: ObjectStorageConfig{
				Key: "qa-database.json",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.FAQ.MinConfidence < 0 {
		return errors.New("faq.minConfidence must be non-negative")
	}
	if c.FAQ.Weights.LengthDivisor <= 0 {
		return errors.New("faq.weights.lengthDivisor must be positive")
	}
	if c.KnowledgeBase.ReloadInterval < 0 {
		return errors.New("knowledgeBase.reloadInterval cannot be negative")
	}
	if c.KnowledgeBase.Watch && c.KnowledgeBase.WatchDebounce <= 0 {
		return errors.New("knowledgeBase.watchDebounce must be positive when watch is enabled")
	}
	if c.KnowledgeBase.LoadTimeout <= 0 {
		return errors.New("knowledgeBase.loadTimeout must be positive")
	}
	if c.KnowledgeBase.Postgres.DSN != "" && !validIdentifier(c.KnowledgeBase.Postgres.Table) {
		return errors.New("knowledgeBase.postgres.table must be a plain identifier")
	}
	if c.KnowledgeBase.Valkey.Enabled {
		if strings.TrimSpace(c.KnowledgeBase.Valkey.Addr) == "" {
			return errors.New("knowledgeBase.valkey.addr cannot be empty when valkey is enabled")
		}
		if strings.TrimSpace(c.KnowledgeBase.Valkey.Key) == "" {
			return errors.New("knowledgeBase.valkey.key cannot be empty when valkey is enabled")
		}
	}
	if obj := c.KnowledgeBase.ObjectStorage; obj.Enabled {
		if obj.Endpoint == "" || obj.Bucket == "" || obj.Key == "" {
			return errors.New("knowledgeBase.objectStorage endpoint, bucket and key are required when enabled")
		}
	}
	if c.Admin.Enabled && len(c.Admin.Secret) < 16 {
		return errors.New("admin.secret must be at least 16 bytes when admin endpoints are enabled")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics.path must start with /")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
