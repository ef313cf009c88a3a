package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the storefront configuration. Zero values are filled by Default.
type Config struct {
	Server       Server       `yaml:"server"`
	Storage      Storage      `yaml:"storage"`
	Catalog      Catalog      `yaml:"catalog"`
	Notification Notification `yaml:"notification"`
	Zoom         Zoom         `yaml:"zoom"`
	Carousel     Carousel     `yaml:"carousel"`
	Detail       Detail       `yaml:"detail"`
	Currency     string       `yaml:"currency"`
}

type Server struct {
	Port string `yaml:"port"`
}

type Storage struct {
	Backend   string `yaml:"backend"`
	Dir       string `yaml:"dir"`
	Profile   string `yaml:"profile"`
	RedisAddr string `yaml:"redisaddr"`
}

type Catalog struct {
	// Path to a .yaml, .json or .parquet product file. Empty uses sample data.
	Path string `yaml:"path"`
	// FeaturedPath is the featured-products file, same formats.
	FeaturedPath string `yaml:"featuredpath"`
}

type Notification struct {
	ShowDelay time.Duration `yaml:"showdelay"`
	Lifetime  time.Duration `yaml:"lifetime"`
	FadeOut   time.Duration `yaml:"fadeout"`
}

type Zoom struct {
	Factor float64 `yaml:"factor"`
}

// Detail bounds the product detail quantity selector.
type Detail struct {
	MaxQuantity int `yaml:"maxquantity"`
}

type Carousel struct {
	Interval time.Duration `yaml:"interval"`
	Slides   []string      `yaml:"slides"`
}

// Default returns the configuration used when nothing is supplied.
func Default() Config {
	return Config{
		Server: Server{Port: "8888"},
		Storage: Storage{
			Backend: BackendFile,
			Dir:     ".storefront",
			Profile: "default",
		},
		Notification: Notification{
			ShowDelay: 10 * time.Millisecond,
			Lifetime:  3000 * time.Millisecond,
			FadeOut:   300 * time.Millisecond,
		},
		Zoom:     Zoom{Factor: 2},
		Carousel: Carousel{Interval: 5000 * time.Millisecond},
		Detail:   Detail{MaxQuantity: 10},
		Currency: "Rs",
	}
}

// Load reads the YAML file at path (optional) over the defaults and then
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
		slog.Debug("Loaded config file", "path", path)
	}

	applyEnv(&cfg)
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("STOREFRONT_STORAGE"); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("STOREFRONT_DATA_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("STOREFRONT_PROFILE"); v != "" {
		cfg.Storage.Profile = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("STOREFRONT_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("STOREFRONT_FEATURED"); v != "" {
		cfg.Catalog.FeaturedPath = v
	}
	if v := os.Getenv("STOREFRONT_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("STOREFRONT_MAX_QUANTITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Detail.MaxQuantity = n
		} else {
			slog.Warn("Ignoring invalid STOREFRONT_MAX_QUANTITY", "value", v)
		}
	}
	if v := os.Getenv("STOREFRONT_ZOOM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Zoom.Factor = f
		} else {
			slog.Warn("Ignoring invalid STOREFRONT_ZOOM", "value", v)
		}
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Profile == "" {
		c.Storage.Profile = def.Storage.Profile
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = def.Storage.Dir
	}
	if c.Notification.ShowDelay == 0 {
		c.Notification.ShowDelay = def.Notification.ShowDelay
	}
	if c.Notification.Lifetime == 0 {
		c.Notification.Lifetime = def.Notification.Lifetime
	}
	if c.Notification.FadeOut == 0 {
		c.Notification.FadeOut = def.Notification.FadeOut
	}
	if c.Zoom.Factor == 0 {
		c.Zoom.Factor = def.Zoom.Factor
	}
	if c.Carousel.Interval == 0 {
		c.Carousel.Interval = def.Carousel.Interval
	}
	if c.Detail.MaxQuantity == 0 {
		c.Detail.MaxQuantity = def.Detail.MaxQuantity
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}
}

// Validate rejects configurations the storefront cannot run with.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Backend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			errs = append(errs, errors.New("storage.redisaddr is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage backend: %s", c.Storage.Backend))
	}
	if c.Zoom.Factor <= 0 {
		errs = append(errs, fmt.Errorf("zoom.factor must be positive, got %v", c.Zoom.Factor))
	}
	if c.Detail.MaxQuantity < 1 {
		errs = append(errs, fmt.Errorf("detail.maxquantity must be at least 1, got %d", c.Detail.MaxQuantity))
	}
	if c.Carousel.Interval < 0 {
		errs = append(errs, errors.New("carousel.interval must not be negative"))
	}
	return errors.Join(errs...)
}
