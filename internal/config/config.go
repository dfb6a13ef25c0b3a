package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type GenAI struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Attempts struct {
	Backend   string        `mapstructure:"backend"` // memory | redis
	TTL       time.Duration `mapstructure:"ttl"`     // 0 keeps attempts forever
	RedisAddr string        `mapstructure:"redis_addr"`
	RedisDB   int           `mapstructure:"redis_db"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

type Config struct {
	Mode         string        `mapstructure:"mode"`
	Port         int           `mapstructure:"port"`
	ClientOrigin string        `mapstructure:"client_origin"`
	ReadLimit    int64         `mapstructure:"read_limit"`
	PingPeriod   time.Duration `mapstructure:"ping_period"`
	Secret       string        `mapstructure:"secret"`
	JoinLimit    int           `mapstructure:"join_limit"`
	JoinInterval time.Duration `mapstructure:"join_interval"`
	GenAI        GenAI         `mapstructure:"genai"`
	Attempts     Attempts      `mapstructure:"attempts"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 5000)
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("join_limit", 16)
	v.SetDefault("join_interval", "10s")
	v.SetDefault("genai.model", "gemini-1.5-flash")
	v.SetDefault("genai.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("genai.timeout", "30s")
	v.SetDefault("attempts.backend", "memory")
	v.SetDefault("attempts.ttl", "0")
	v.SetDefault("attempts.redis_addr", "localhost:6379")
	v.SetDefault("attempts.key_prefix", "attempt:")

	// Secrets and deploy-specific values come from the environment.
	_ = v.BindEnv("genai.api_key", "GOOGLE_API_KEY")
	_ = v.BindEnv("client_origin", "CLIENT_ORIGIN")
	_ = v.BindEnv("attempts.redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("secret", "SESSION_SECRET")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("⚠️ Config file not found (%s), using defaults\n", fileName)
	} else {
		fmt.Printf("✅ Loaded config: %s\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	fmt.Printf("🧩 Mode: %s | Port: %d | Attempts: %s\n", cfg.Mode, cfg.Port, cfg.Attempts.Backend)
	return &cfg, nil
}
