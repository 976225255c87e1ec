package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in the package documentation are considered; anything else in args
// is filtered out with flagx.FilterArgs. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-i", "-o", "-n", "-l", "-f", "-t", "-b", "-g", "-e", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database file")
	fs.StringVar(&cfg.ImagesDir, "i", cfg.ImagesDir, "product images directory")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "exports directory")
	fs.StringVar(&cfg.StoreName, "n", cfg.StoreName, "store name printed on receipts")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")
	timeout := fs.Int("t", int(cfg.OperationTimeout.Seconds()), "operation timeout (in seconds)")

	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for exports")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.OperationTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
