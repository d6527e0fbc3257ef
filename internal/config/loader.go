package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix は環境変数のプレフィックスです（例: ADKIT_GEMINI_API_KEY）。
const EnvPrefix = "ADKIT"

// Load は設定を読み込みます。
// 優先順位: 環境変数 -> 設定ファイル (path、空なら読まない) -> デフォルト値
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	if path != "" {
		if err := loadConfigFile(v, path); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFile(v *viper.Viper, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := v.ReadConfig(f); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// setDefaults は設定のデフォルト値です。
// 環境変数の上書きを効かせるため、すべてのキーをここで宣言します。
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.shutdown_timeout", "15s")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.image_model", "gemini-2.5-flash-image")
	v.SetDefault("gemini.text_model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", "120s")

	v.SetDefault("copy.caption_count", 3)

	v.SetDefault("assets.fetch_timeout", "20s")
	v.SetDefault("assets.cache_ttl", "30m")
	v.SetDefault("assets.compress", false)
	v.SetDefault("assets.compression_quality", 75)
	v.SetDefault("assets.gcs_enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
