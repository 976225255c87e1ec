package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the cashier terminal.
type Config struct {
	DatabasePath     string
	ImagesDir        string
	ExportDir        string
	StoreName        string
	LogLevel         string
	LogFormat        string
	OperationTimeout time.Duration

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with defaults suitable for a single local terminal.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "gophpos.db"
	c.ImagesDir = "images/products"
	c.ExportDir = "exports"
	c.StoreName = "Kasir Hijau"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.OperationTimeout = 5 * time.Second
	c.S3Region = "us-east-1"
}

// S3Enabled reports whether exports should also be uploaded to a bucket.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig constructs a Config from defaults, environment, JSON and flags
// taken from os.Args. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args, lookup)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
