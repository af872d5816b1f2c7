package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Render   RenderConfig   `toml:"render"`
	Delivery DeliveryConfig `toml:"delivery"`
	Server   ServerConfig   `toml:"server"`
}

type RenderConfig struct {
	Scale       float64 `toml:"scale"`
	JPEGQuality int     `toml:"jpeg_quality"`
	Format      string  `toml:"format"`
	Template    string  `toml:"template"`
}

type DeliveryConfig struct {
	// Mode is "device", "browser" or "auto".
	Mode         string `toml:"mode"`
	GalleryDir   string `toml:"gallery_dir"`
	DownloadsDir string `toml:"downloads_dir"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Render: RenderConfig{
			Scale:       3,
			JPEGQuality: 95,
			Format:      "CR80",
			Template:    "A",
		},
		Delivery: DeliveryConfig{
			Mode:         "auto",
			GalleryDir:   filepath.Join(home, "Pictures", "ProID"),
			DownloadsDir: filepath.Join(home, "Downloads"),
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "proid", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first run.
// Keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	return LoadFile(GetConfigFilePath())
}

func LoadFile(configPath string) (*Config, error) {
	config := Default()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(configPath, config); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	// PORT wins over the file, as on hosted deployments.
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Addr = ":" + port
	}
	return config, nil
}

// Save writes config to path as TOML.
func Save(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
