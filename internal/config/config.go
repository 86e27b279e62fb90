package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	LLM     LLMConfig
	Storage StorageConfig
	Cache   CacheConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig selects and configures the text-generation backend.
// Provider is "gemini" (langchaingo googleai) or "ollama" (langchaingo ollama).
type LLMConfig struct {
	Provider  string
	APIKey    string
	Model     string
	OllamaURL string
	Timeout   time.Duration // 0 means no client-side timeout
}

type StorageConfig struct {
	UploadDir      string
	MaxUploadBytes int64
}

type CacheConfig struct {
	TextTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "120s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "ai-study-assistant")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.ollama_url", "http://localhost:11434")
	v.SetDefault("llm.timeout", "0s")

	v.SetDefault("storage.upload_dir", "./uploads")
	v.SetDefault("storage.max_upload_bytes", 10*1024*1024)

	v.SetDefault("cache.text_ttl", "24h")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads .env, an optional config.yaml and the environment, in
// that order of increasing precedence.
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Provider:  strings.ToLower(v.GetString("llm.provider")),
			APIKey:    v.GetString("llm.api_key"),
			Model:     v.GetString("llm.model"),
			OllamaURL: v.GetString("llm.ollama_url"),
			Timeout:   v.GetDuration("llm.timeout"),
		},
		Storage: StorageConfig{
			UploadDir:      v.GetString("storage.upload_dir"),
			MaxUploadBytes: v.GetInt64("storage.max_upload_bytes"),
		},
		Cache: CacheConfig{
			TextTTL: v.GetDuration("cache.text_ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	// GEMINI_API_KEY is the name the key usually ships under.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return cfg
}

// GetDSN returns a PostgreSQL connection URL for the pgx driver.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

// GetMigrateURL returns the DSN in the scheme golang-migrate's pgx/v5 driver expects.
func (c *Config) GetMigrateURL() string {
	return "pgx5" + strings.TrimPrefix(c.GetDSN(), "postgres")
}
