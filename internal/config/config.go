package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/VyomPatel31/Vendor-Dashboard/internal/logger"
	"github.com/VyomPatel31/Vendor-Dashboard/internal/modules/vendor"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VENDORDESK_SERVER_PORT.
const EnvPrefix = "VENDORDESK"

type Config struct {
	Server ServerConfig           `mapstructure:"server"`
	Store  vendor.FileStoreConfig `mapstructure:"store"`
	Chaos  vendor.ChaosConfig     `mapstructure:"chaos"`
	Log    logger.Config          `mapstructure:"log"`
	Client ClientConfig           `mapstructure:"client"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	chaos := vendor.DefaultChaosConfig()
	log := logger.DefaultConfig()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("store.path", "data/mockData.json")
	v.SetDefault("store.seed", 50)

	v.SetDefault("chaos.read_delay", chaos.ReadDelay)
	v.SetDefault("chaos.status_delay", chaos.StatusDelay)
	v.SetDefault("chaos.bulk_delay", chaos.BulkDelay)
	v.SetDefault("chaos.list_failure_rate", chaos.ListFailureRate)

	v.SetDefault("log.level", string(log.Level))
	v.SetDefault("log.format", log.Format)
	v.SetDefault("log.output", log.Output)
	v.SetDefault("log.component", "")

	v.SetDefault("client.base_url", "http://localhost:5000/api")
	v.SetDefault("client.timeout", 15*time.Second)
}

// Load reads .env (if present), then the config file, then VENDORDESK_*
// environment variables, each overriding the previous. An empty path looks
// for an optional config.yaml in the working directory; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Store.Path == "" {
		return errors.New("store path is required")
	}
	if c.Chaos.ListFailureRate < 0 || c.Chaos.ListFailureRate > 1 {
		return fmt.Errorf("chaos list_failure_rate %v not in [0, 1]", c.Chaos.ListFailureRate)
	}
	if c.Chaos.ReadDelay < 0 || c.Chaos.StatusDelay < 0 || c.Chaos.BulkDelay < 0 {
		return errors.New("chaos delays must not be negative")
	}
	return nil
}
