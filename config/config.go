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

// FileName is the config file written to the config directory on first run
const FileName = "tubechat.yaml"

// api.base_url -> TUBECHAT_API_BASE_URL
var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all configuration for tubechat
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Preview PreviewConfig `mapstructure:"preview"`
	Browser BrowserConfig `mapstructure:"browser"`
	Log     LogConfig     `mapstructure:"log"`

	// path of the file the config was read from (or will be written to)
	path string
	v    *viper.Viper
}

// APIConfig holds the remote service settings
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	ShowHelp      bool          `mapstructure:"show_help"`
}

// PreviewConfig holds thumbnail preview settings
type PreviewConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	HeightPx int  `mapstructure:"height_px"`
}

// BrowserConfig holds the watch-in-browser settings
type BrowserConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	UserDataDir string `mapstructure:"user_data_dir"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultDir returns ~/.tubechat
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tubechat"
	}
	return filepath.Join(homeDir, ".tubechat")
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", time.Duration(0))

	v.SetDefault("ui.toast_duration", 4*time.Second)
	v.SetDefault("ui.show_help", true)

	v.SetDefault("preview.enabled", true)
	v.SetDefault("preview.height_px", 180)

	v.SetDefault("browser.enabled", true)
	v.SetDefault("browser.user_data_dir", filepath.Join(dir, "chrome-data"))

	v.SetDefault("log.file", filepath.Join(dir, "tubechat.log"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration from dir/tubechat.yaml, a .env file in the working
// directory, and TUBECHAT_* environment variables. A missing config file is
// created with the defaults.
func Load(dir string) (*Config, error) {
	return load(viper.New(), dir)
}

// LoadWith is Load with a caller-provided viper instance, so flags bound
// with BindPFlag take precedence over the file.
func LoadWith(v *viper.Viper, dir string) (*Config, error) {
	return load(v, dir)
}

func load(v *viper.Viper, dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDir()
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults(v, dir)

	path := filepath.Join(dir, FileName)
	v.SetConfigFile(path)
	v.SetEnvPrefix("TUBECHAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envKeyReplacer)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("could not write default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{path: path, v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.path
}

// ToggleHelp flips the help bar setting and persists it.
// Returns the new value.
func (c *Config) ToggleHelp() (bool, error) {
	c.UI.ShowHelp = !c.UI.ShowHelp
	if c.v == nil {
		return c.UI.ShowHelp, nil
	}
	c.v.Set("ui.show_help", c.UI.ShowHelp)
	return c.UI.ShowHelp, c.v.WriteConfigAs(c.path)
}
