// Package config はアプリケーション設定の読み込みを提供する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
// すべての項目にデフォルト値があり、環境変数なしでも起動できる。
type Config struct {
	// Server
	ServerPort      string
	ShutdownTimeout time.Duration

	// Static assets
	StaticDir string

	// Rate Limit（req/min単位）
	RateLimitGeneral int
	RateLimitSignup  int

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// 数値項目が不正な値の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnvString("SERVER_PORT", "8080"),
		StaticDir:         getEnvString("STATIC_DIR", "static"),
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:8080"),
	}

	var err error
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitGeneral, err = getEnvInt("RATE_LIMIT_GENERAL", 120); err != nil {
		return nil, err
	}
	if cfg.RateLimitSignup, err = getEnvInt("RATE_LIMIT_SIGNUP", 30); err != nil {
		return nil, err
	}

	if cfg.RateLimitGeneral <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_GENERAL must be positive: %d", cfg.RateLimitGeneral)
	}
	if cfg.RateLimitSignup <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_SIGNUP must be positive: %d", cfg.RateLimitSignup)
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", key, v)
	}
	return i, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %q", key, v)
	}
	return d, nil
}
