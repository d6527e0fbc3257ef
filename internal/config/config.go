// Package config はサーバーの設定を読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config は設定のルートです。
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Gemini GeminiConfig `yaml:"gemini" mapstructure:"gemini"`
	Copy   CopyConfig   `yaml:"copy" mapstructure:"copy"`
	Assets AssetsConfig `yaml:"assets" mapstructure:"assets"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig は HTTP サーバーの設定です。
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// GeminiConfig はモデル呼び出しの設定です。
type GeminiConfig struct {
	APIKey     string        `yaml:"api_key" mapstructure:"api_key"`
	ImageModel string        `yaml:"image_model" mapstructure:"image_model"`
	TextModel  string        `yaml:"text_model" mapstructure:"text_model"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// CopyConfig はキャプション生成の設定です。
type CopyConfig struct {
	CaptionCount int `yaml:"caption_count" mapstructure:"caption_count"`
}

// AssetsConfig は画像の取得とキャッシュの設定です。
type AssetsConfig struct {
	FetchTimeout       time.Duration `yaml:"fetch_timeout" mapstructure:"fetch_timeout"`
	CacheTTL           time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	Compress           bool          `yaml:"compress" mapstructure:"compress"`
	CompressionQuality int           `yaml:"compression_quality" mapstructure:"compression_quality"`
	// GCSEnabled が true なら gs:// の画像を Application Default Credentials で読み込みます。
	GCSEnabled bool `yaml:"gcs_enabled" mapstructure:"gcs_enabled"`
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "json" または "text"
}

// Validate は起動に必須の値を確認します。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return fmt.Errorf("gemini.api_key is required (ADKIT_GEMINI_API_KEY)")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Copy.CaptionCount <= 0 {
		return fmt.Errorf("copy.caption_count must be positive: %d", c.Copy.CaptionCount)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text: %q", c.Log.Format)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel はログレベル文字列を slog.Level に変換します。
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}
