package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// AppConfig holds the CLI configuration, read once per invocation from the
// config file and BANKBOOK_* environment variables.
type AppConfig struct {
	// DataDir is the directory holding ledger.jsonl, labels.json and
	// budgets.json.
	DataDir string `mapstructure:"data_dir"`
	// Currency is the ISO code used to format amounts in reports.
	Currency string `mapstructure:"currency"`
	// DedupeAmountDay enables the same-day same-amount import heuristic.
	DedupeAmountDay bool `mapstructure:"dedupe_amount_day"`
}

var loadConfig = sync.OnceValue(func() AppConfig {
	v := viper.New()

	v.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "bankbook"))
	v.SetDefault("currency", "USD")
	v.SetDefault("dedupe_amount_day", true)

	v.SetConfigType("yaml")
	if path := os.Getenv("BANKBOOK_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bankbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BANKBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// an absent config file just means defaults
	_ = v.ReadInConfig()

	var c AppConfig
	if err := v.Unmarshal(&c); err != nil {
		return AppConfig{
			DataDir:         filepath.Join(os.Getenv("HOME"), ".local", "share", "bankbook"),
			Currency:        "USD",
			DedupeAmountDay: true,
		}
	}
	return c
})

// Config returns the CLI configuration.
func Config() AppConfig { return loadConfig() }
