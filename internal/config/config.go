package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 2333
	defaultEnv         = "development"
	defaultDBHost      = "127.0.0.1"
	defaultDBPort      = 3306
	defaultDBUser      = "root"
	defaultDBPassword  = "password"
	defaultDBName      = "lingo_polska"
	defaultDBCharset   = "utf8mb4"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultLookupTTL   = time.Hour
	defaultStatsTTL    = 6 * time.Hour
	defaultIngestBatch = 5000
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	DSN            string         `yaml:"dsn"` // full MySQL DSN, overrides Database
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Cache          CacheConfig    `yaml:"cache"`
	Ingest         IngestConfig   `yaml:"ingest"`
	AI             AIConfig       `yaml:"ai"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// CacheConfig tunes the in-process lookup cache. TTLs are reliability knobs,
// not correctness knobs: a cold cache must serve identical results.
type CacheConfig struct {
	LookupTTL time.Duration `yaml:"lookup_ttl"`
	StatsTTL  time.Duration `yaml:"stats_ttl"`
}

// IngestConfig tunes the offline corpus ingestion tool.
type IngestConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// AIConfig configures the grammar-validation provider.
type AIConfig struct {
	Provider AIProvider `yaml:"provider"`
}

// AIProvider describes one text-generation backend.
type AIProvider struct {
	Type         string `yaml:"type"` // "anthropic" | "openai" | "openai-compatible"
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"model"`
}

// Load reads the YAML config at path, applying defaults for anything unset.
// A missing file is not an error: defaults plus environment overrides apply.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("LINGO_DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("LINGO_REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("LINGO_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("LINGO_AI_API_KEY"); v != "" {
		c.AI.Provider.APIKey = v
	}
	if v := os.Getenv("LINGO_ENV"); v != "" {
		c.Env = v
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.Database.Host == "" {
		c.Database.Host = defaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultDBPort
	}
	if c.Database.User == "" {
		c.Database.User = defaultDBUser
	}
	if c.Database.Password == "" {
		c.Database.Password = defaultDBPassword
	}
	if c.Database.Name == "" {
		c.Database.Name = defaultDBName
	}
	if c.Database.Charset == "" {
		c.Database.Charset = defaultDBCharset
	}
	if c.DSN == "" {
		c.DSN = c.Database.buildDSN()
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if c.Cache.LookupTTL <= 0 {
		c.Cache.LookupTTL = defaultLookupTTL
	}
	if c.Cache.StatsTTL <= 0 {
		c.Cache.StatsTTL = defaultStatsTTL
	}
	if c.Ingest.BatchSize <= 0 {
		c.Ingest.BatchSize = defaultIngestBatch
	}
}

func (d DatabaseConfig) buildDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name, d.Charset)
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}
