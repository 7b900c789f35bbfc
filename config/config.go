package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Postgres PostgresConfig
	Cache    CacheConfig

	// Auth
	Auth AuthConfig

	// Voice input
	Voice VoiceConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Deadline sync
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// VoiceConfig configures the audio upload limits and the speech-to-text service.
type VoiceConfig struct {
	Timezone        string
	MinAudioBytes   int64
	MaxAudioBytes   int64
	RateLimitPerMin int
	Transcription   TranscriptionConfig
}

type TranscriptionConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// LLMConfig configures the providers used for voice extraction.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxRetryDelay   string
	MaxTotalTimeout string
}

// ProviderConfig is one entry of llm.providers. Lower priority is tried first.
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	}
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.Issuer = viper.GetString("auth.issuer")

	// Voice input
	cfg.Voice.Timezone = viper.GetString("voice.timezone")
	cfg.Voice.MinAudioBytes = viper.GetInt64("voice.min_audio_bytes")
	cfg.Voice.MaxAudioBytes = viper.GetInt64("voice.max_audio_bytes")
	cfg.Voice.RateLimitPerMin = viper.GetInt("voice.rate_limit_per_min")
	cfg.Voice.Transcription.APIKey = expandEnvVar(viper.GetString("voice.transcription.api_key"))
	if key := viper.GetString("openai_api_key"); cfg.Voice.Transcription.APIKey == "" && key != "" {
		cfg.Voice.Transcription.APIKey = key
	}
	cfg.Voice.Transcription.BaseURL = viper.GetString("voice.transcription.base_url")
	cfg.Voice.Transcription.Model = viper.GetString("voice.transcription.model")
	cfg.Voice.Transcription.Language = viper.GetString("voice.transcription.language")

	// Deadline sync
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxRetryDelay = viper.GetString("llm.max_retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("llm.providers: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Voice.MinAudioBytes <= 0 || cfg.Voice.MaxAudioBytes < cfg.Voice.MinAudioBytes {
		return fmt.Errorf("voice audio size bounds are invalid: min=%d max=%d",
			cfg.Voice.MinAudioBytes, cfg.Voice.MaxAudioBytes)
	}
	if _, err := time.LoadLocation(cfg.Voice.Timezone); err != nil {
		return fmt.Errorf("voice.timezone: %w", err)
	}
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required when sync is enabled")
	}
	return cfg.LLM.validate()
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.auto_migrate", true)

	viper.SetDefault("cache.size", 1000)
	viper.SetDefault("cache.ttl", "5m")

	viper.SetDefault("auth.issuer", "")

	viper.SetDefault("voice.timezone", "Asia/Shanghai")
	viper.SetDefault("voice.min_audio_bytes", 1024)
	viper.SetDefault("voice.max_audio_bytes", 25*1024*1024)
	viper.SetDefault("voice.rate_limit_per_min", 10)
	viper.SetDefault("voice.transcription.model", "whisper-1")
	viper.SetDefault("voice.transcription.language", "zh")

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_retry_delay", "5s")
	viper.SetDefault("llm.max_total_timeout", "30s")
}

// expandEnvVar resolves a value written as ${VAR} from the environment.
func expandEnvVar(value string) string {
	name, ok := strings.CutPrefix(value, "${")
	if !ok {
		return value
	}
	name, ok = strings.CutSuffix(name, "}")
	if !ok {
		return value
	}
	if v := viper.GetString(name); v != "" {
		return v
	}
	return os.Getenv(name)
}

func (c LLMConfig) validate() error {
	if len(c.Providers) == 0 {
		return errors.New("llm.providers: at least one provider is required")
	}

	enabled := 0
	seen := make(map[int]string, len(c.Providers))
	for i, p := range c.Providers {
		switch {
		case p.Name == "":
			return fmt.Errorf("llm.providers[%d]: name is required", i)
		case p.Model == "":
			return fmt.Errorf("llm.providers[%d] %s: model is required", i, p.Name)
		case !p.Enabled:
			continue
		case p.Priority <= 0:
			return fmt.Errorf("llm.providers[%d] %s: priority must be positive", i, p.Name)
		}
		if other, dup := seen[p.Priority]; dup {
			return fmt.Errorf("llm.providers[%d] %s: priority %d already used by %s", i, p.Name, p.Priority, other)
		}
		seen[p.Priority] = p.Name
		enabled++
	}

	if enabled == 0 {
		return errors.New("llm.providers: no provider is enabled")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
