package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/scheduler"
	"auction-dashboard/internal/trend"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. DASHBOARD_BACKEND_URL
const EnvPrefix = "DASHBOARD"

// Config holds everything the dashboard process needs at startup
type Config struct {
	BackendURL     string
	PollInterval   time.Duration
	BannerTTL      time.Duration
	TrendPoints    int
	Locale         string
	CurrencySymbol string
	Location       *time.Location
	LogLevel       string
	Port           string
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend_url", "http://localhost:8000")
	v.SetDefault("poll_interval", scheduler.DefaultInterval)
	v.SetDefault("banner_ttl", notify.DefaultTTL)
	v.SetDefault("trend_points", trend.DefaultPoints)
	v.SetDefault("locale", "en")
	v.SetDefault("currency_symbol", "€")
	v.SetDefault("timezone", "Local")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", "8080")
}

// Flags declares the command line flags Load understands
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("backend_url", "", "base URL of the auction backend")
	fs.Duration("poll_interval", 0, "time between polling ticks")
	fs.String("locale", "", "display language (en, it)")
	fs.String("log_level", "", "log level (debug, info, warn, error)")
	fs.String("port", "", "HTTP listen port")
	return fs
}

// Load resolves the configuration. Precedence, highest first: flags, environment,
// config file, defaults. PORT is honoured as well as DASHBOARD_PORT.
func Load(args []string) (Config, error) {
	fs := Flags("dashboard")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("config: bind PORT: %w", err)
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// only flags the user actually passed override lower layers
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			bindErr = errors.Join(bindErr, err)
		}
	})
	if bindErr != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", bindErr)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		BackendURL:     strings.TrimSpace(v.GetString("backend_url")),
		PollInterval:   v.GetDuration("poll_interval"),
		BannerTTL:      v.GetDuration("banner_ttl"),
		TrendPoints:    v.GetInt("trend_points"),
		Locale:         v.GetString("locale"),
		CurrencySymbol: v.GetString("currency_symbol"),
		LogLevel:       v.GetString("log_level"),
		Port:           strings.TrimPrefix(v.GetString("port"), ":"),
	}

	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return Config{}, fmt.Errorf("config: timezone: %w", err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with
func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: backend_url %q must be an absolute URL", c.BackendURL)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config: poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.BannerTTL <= 0 {
		return fmt.Errorf("config: banner_ttl must be positive, got %s", c.BannerTTL)
	}
	if c.TrendPoints < 1 {
		return fmt.Errorf("config: trend_points must be at least 1, got %d", c.TrendPoints)
	}
	if c.Port == "" {
		return errors.New("config: port is empty")
	}
	return nil
}
