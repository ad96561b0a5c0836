package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vancomm/memefield/internal/field"
)

const EnvPrefix = "MEMEFIELD"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Mode          string        `mapstructure:"mode"`
	Addr          string        `mapstructure:"addr"`
	DefaultMines  int           `mapstructure:"default_mines"`
	SessionIdle   time.Duration `mapstructure:"session_idle"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	LogFile       string        `mapstructure:"log_file"`
	LogMaxSizeMB  int           `mapstructure:"log_max_size_mb"`
	TokenSecret   string        `mapstructure:"token_secret"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "development")
	v.SetDefault("addr", ":8080")
	v.SetDefault("default_mines", 40)
	v.SetDefault("session_idle", 30*time.Minute)
	v.SetDefault("sweep_interval", time.Minute)
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)
	v.SetDefault("token_secret", "")
	v.SetDefault("token_lifetime", 24*time.Hour)
}

// Load reads the config file at path, if any, then lets MEMEFIELD_* environment
// variables override it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	if c.DefaultMines <= 0 || c.DefaultMines >= field.Width*field.Height {
		return fmt.Errorf("%w: default_mines = %d", ErrInvalid, c.DefaultMines)
	}
	if c.SessionIdle <= 0 || c.SweepInterval <= 0 || c.TokenLifetime <= 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalid)
	}
	if c.TokenSecret == "" {
		if c.Production() {
			return fmt.Errorf("%w: token_secret is required in production", ErrInvalid)
		}
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("unable to generate token secret: %w", err)
		}
		c.TokenSecret = hex.EncodeToString(secret)
	}
	return nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"mode":            c.Mode,
		"addr":            c.Addr,
		"default_mines":   c.DefaultMines,
		"session_idle":    c.SessionIdle.String(),
		"sweep_interval":  c.SweepInterval.String(),
		"log_file":        c.LogFile,
		"log_max_size_mb": c.LogMaxSizeMB,
		"token_lifetime":  c.TokenLifetime.String(),
	}
}
