// Package config handles loading, defaulting, and hot-reloading the
// duplexer configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Config is the full duplexer configuration.
type Config struct {
	// BatchSize is the number of pages per printed batch.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// ExcludeNames lists file names excluded from input discovery, on
	// top of the generated Batch_<n>.pdf pattern.
	ExcludeNames []string `mapstructure:"exclude_names" yaml:"exclude_names"`

	Server ServerConfig `mapstructure:"server" yaml:"server"`
	IPSync IPSyncConfig `mapstructure:"ipsync" yaml:"ipsync"`
}

// ServerConfig holds settings for the web form server.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`

	// MaxUploadMB caps the size of a single uploaded PDF.
	MaxUploadMB int `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
}

// IPSyncConfig holds settings for publishing the host IP address.
type IPSyncConfig struct {
	// Endpoint receives a JSON POST with the host name and IP.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Attempts bounds the number of delivery attempts.
	Attempts uint `mapstructure:"attempts" yaml:"attempts"`
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("batch_size", defaults.BatchSize)
	viper.SetDefault("exclude_names", defaults.ExcludeNames)
	viper.SetDefault("server", defaults.Server)
	viper.SetDefault("ipsync", defaults.IPSync)

	// Environment variables with DUPLEXER_ prefix
	viper.SetEnvPrefix("DUPLEXER")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.duplexer")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Duplexer configuration
# batch_size controls pages per printed batch; exclude_names are skipped
# during input discovery. Values can be overridden with DUPLEXER_* env vars.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
