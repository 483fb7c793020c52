package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var; file names are resolved relative to
// DataDir.
type Config struct {
	Env        string `mapstructure:"APP_ENV"` // development | production
	DataDir    string `mapstructure:"DATA_DIR"`
	CartFile   string `mapstructure:"CART_FILE"`
	CredsFile  string `mapstructure:"CREDENTIALS_FILE"`
	ReceiptDir string `mapstructure:"RECEIPT_DIR"`
	// TableWidth is the character width of the drawn interface frame.
	TableWidth int `mapstructure:"TABLE_WIDTH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("CART_FILE", "cart.json")
	viper.SetDefault("CREDENTIALS_FILE", "credentials.csv")
	viper.SetDefault("RECEIPT_DIR", "receipts")
	viper.SetDefault("TABLE_WIDTH", 62)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CartPath is the location of the shared cart document.
func (c *Config) CartPath() string {
	return filepath.Join(c.DataDir, c.CartFile)
}

// CredentialsPath is the location of the credential file.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.DataDir, c.CredsFile)
}
