package config

import (
	"fmt"

	"github.com/pkg/errors"

	"calcweb/pkg/conf"
)

// Config is populated from the environment (HOST, PORT, DEBUG, LOG_FILE,
// STATIC_DIR, TEMPLATES_DIR) and an optional config file. Values affect only
// transport binding, logging, and asset locations, never routing.
type Config struct {
	Host         string
	Port         uint16
	Debug        bool
	LogFile      string `mapstructure:"log_file"`
	StaticDir    string `mapstructure:"static_dir"`
	TemplatesDir string `mapstructure:"templates_dir"`
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.WithConfigFile(path),
		conf.WithDefaults(map[string]interface{}{
			"host":  "0.0.0.0",
			"port":  5000,
			"debug": false,
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}
