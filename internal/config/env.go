package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "GOPHPOS_"

// loadDotenv is a seam for godotenv.Load.
var loadDotenv = godotenv.Load

// parseEnv loads a dotenv file into the process environment (an explicit -env
// file must exist; ./.env is optional) and then overlays GOPHPOS_* variables.
// godotenv never overrides variables that are already set.
func parseEnv(cfg *Config, args []string, lookup func(string) (string, bool)) {
	if path := flagx.ConfigFileFlags(args).Env; path != "" {
		if err := loadDotenv(path); err != nil {
			panic(err)
		}
	} else if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	str("DB", &cfg.DatabasePath)
	str("IMAGES_DIR", &cfg.ImagesDir)
	str("EXPORT_DIR", &cfg.ExportDir)
	str("STORE_NAME", &cfg.StoreName)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_REGION", &cfg.S3Region)
	str("S3_ENDPOINT", &cfg.S3BaseEndpoint)
	str("S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("S3_SECRET_KEY", &cfg.S3SecretKey)

	if v, ok := lookup(envPrefix + "OP_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			secs, convErr := strconv.Atoi(v)
			if convErr != nil {
				panic(err)
			}
			d = time.Duration(secs) * time.Second
		}
		cfg.OperationTimeout = d
	}
}
