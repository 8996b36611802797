package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	Port    string
	Env     string
	LogFile string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr      string
	ChatSessionTTL time.Duration

	S3Bucket      string
	S3Region      string
	CloudFrontURL string

	CORSOrigins []string

	ScanDelay time.Duration
	DietDelay time.Duration
	ChatDelay time.Duration
}

// PersistenceEnabled reports whether a Postgres database is configured.
func (c *Config) PersistenceEnabled() bool { return c.DBHost != "" }

// ArchiveEnabled reports whether scanned images should be stored in S3.
func (c *Config) ArchiveEnabled() bool { return c.S3Bucket != "" }

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Load reads .env files (if any) into the environment, then resolves every
// setting through viper so environment variables win over defaults.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "healthscan")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("CHAT_SESSION_TTL", "30m")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SCAN_DELAY", "2s")
	v.SetDefault("DIET_DELAY", "1500ms")
	v.SetDefault("CHAT_DELAY", "1500ms")

	region := v.GetString("S3_REGION")
	if region == "" {
		region = v.GetString("AWS_REGION") // fallback
	}

	cfg := &Config{
		Port:          v.GetString("PORT"),
		Env:           v.GetString("ENV"),
		LogFile:       v.GetString("LOG_FILE"),
		DBHost:        v.GetString("DB_HOST"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBPort:        v.GetString("DB_PORT"),
		DBSSLMode:     v.GetString("DB_SSLMODE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		S3Bucket:      v.GetString("S3_BUCKET"),
		S3Region:      region,
		CloudFrontURL: v.GetString("CLOUDFRONT_URL"),
		CORSOrigins:   splitList(v.GetString("CORS_ORIGINS")),
	}

	for key, dst := range map[string]*time.Duration{
		"CHAT_SESSION_TTL": &cfg.ChatSessionTTL,
		"SCAN_DELAY":       &cfg.ScanDelay,
		"DIET_DELAY":       &cfg.DietDelay,
		"CHAT_DELAY":       &cfg.ChatDelay,
	} {
		d, err := durationSetting(v, key)
		if err != nil {
			return nil, err
		}
		*dst = d
	}

	if cfg.ArchiveEnabled() && cfg.S3Region == "" {
		return nil, errors.New("S3_BUCKET is set but neither S3_REGION nor AWS_REGION is")
	}
	if cfg.ChatSessionTTL <= 0 {
		return nil, errors.New("CHAT_SESSION_TTL must be positive")
	}
	return cfg, nil
}

// durationSetting parses key strictly; viper's GetDuration turns a typo into 0.
func durationSetting(v *viper.Viper, key string) (time.Duration, error) {
	d, err := cast.ToDurationE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
