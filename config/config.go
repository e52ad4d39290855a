package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultKeyPrefix        = "mandoob"
	defaultDelayedAfter     = 24 * time.Hour
	defaultChatHistoryLimit = 20
	defaultContextTurns     = 10
	defaultAssistantModel   = "deepseek-chat"
	defaultAssistantURL     = "https://api.deepseek.com/chat/completions"
	defaultMaxTokens        = 1000
	defaultTemperature      = 0.7
	defaultAssistantTimeout = 45 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store configures the in-memory entity store and its snapshots.
	Store *StoreConfig `json:"store" yaml:"store"`

	// Slot configures the durable key-value slot backing the store.
	Slot *SlotConfig `json:"slot" yaml:"slot"`

	// Assistant configures the remote chat-completion endpoint.
	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`

	// PubSub configuration for invoice event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines entity-store behaviour that the source variants used to
// disagree on; one canonical value each, explicit and testable.
type StoreConfig struct {
	// KeyPrefix namespaces every slot key, e.g. "mandoob:invoices".
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	// DelayedAfter is the staleness window after which a pending invoice
	// counts as delayed.
	DelayedAfter time.Duration `json:"delayedAfter" yaml:"delayedAfter"`

	// ChatHistoryLimit caps the persisted conversation history (FIFO).
	ChatHistoryLimit int `json:"chatHistoryLimit" yaml:"chatHistoryLimit"`

	// SnapshotInterval drives the periodic persistence ticker. Zero disables it.
	SnapshotInterval time.Duration `json:"snapshotInterval" yaml:"snapshotInterval"`

	// SeedPath points at a directory of invoices.json/drivers.json/stock.json
	// used when the slot holds no snapshot. Empty means start empty.
	SeedPath string `json:"seedPath" yaml:"seedPath"`
}

// SlotConfig selects the durable slot implementation.
type SlotConfig struct {
	// Provider type: "memory", "file" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Path is the directory for the file provider.
	Path string `json:"path" yaml:"path"`

	// DSN is the connection string for the postgres provider.
	DSN string `json:"dsn" yaml:"dsn"`
}

// AssistantConfig defines the remote completion endpoint contract. The API key
// is injected here (config file or ASSISTANT_APIKEY env), never compiled in.
type AssistantConfig struct {
	Endpoint     string        `json:"endpoint" yaml:"endpoint"`
	Model        string        `json:"model" yaml:"model"`
	APIKey       string        `json:"apiKey" yaml:"apiKey"`
	MaxTokens    int           `json:"maxTokens" yaml:"maxTokens"`
	Temperature  float64       `json:"temperature" yaml:"temperature"`
	ContextTurns int           `json:"contextTurns" yaml:"contextTurns"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ASSISTANT_APIKEY -> assistant.apiKey (not assistant.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.KeyPrefix == "" {
		cfg.Store.KeyPrefix = defaultKeyPrefix
	}
	if cfg.Store.DelayedAfter <= 0 {
		cfg.Store.DelayedAfter = defaultDelayedAfter
	}
	if cfg.Store.ChatHistoryLimit <= 0 {
		cfg.Store.ChatHistoryLimit = defaultChatHistoryLimit
	}

	if cfg.Slot == nil {
		cfg.Slot = &SlotConfig{}
	}

	if cfg.Assistant == nil {
		cfg.Assistant = &AssistantConfig{}
	}
	if cfg.Assistant.Endpoint == "" {
		cfg.Assistant.Endpoint = defaultAssistantURL
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = defaultAssistantModel
	}
	if cfg.Assistant.MaxTokens <= 0 {
		cfg.Assistant.MaxTokens = defaultMaxTokens
	}
	if cfg.Assistant.Temperature <= 0 {
		cfg.Assistant.Temperature = defaultTemperature
	}
	if cfg.Assistant.ContextTurns <= 0 {
		cfg.Assistant.ContextTurns = defaultContextTurns
	}
	if cfg.Assistant.Timeout <= 0 {
		cfg.Assistant.Timeout = defaultAssistantTimeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
