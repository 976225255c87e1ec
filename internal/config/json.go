package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophpos/internal/flagx"
	"github.com/dmitrijs2005/gophpos/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the current value untouched.
type JsonConfig struct {
	DatabasePath     string         `json:"database_path"`
	ImagesDir        string         `json:"images_dir"`
	ExportDir        string         `json:"export_dir"`
	StoreName        string         `json:"store_name"`
	LogLevel         string         `json:"log_level"`
	LogFormat        string         `json:"log_format"`
	OperationTimeout timex.Duration `json:"operation_timeout"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
	S3AccessKey      string         `json:"s3_access_key"`
	S3SecretKey      string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without the flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlags(args).JSON
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.ImagesDir, jc.ImagesDir)
	set(&cfg.ExportDir, jc.ExportDir)
	set(&cfg.StoreName, jc.StoreName)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.S3Bucket, jc.S3Bucket)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.OperationTimeout.Duration > 0 {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
}
