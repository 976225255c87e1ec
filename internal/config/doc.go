// Package config loads runtime configuration for the gophpos cashier terminal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-env, or ./.env when present) and GOPHPOS_* environment
//     variables (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-i string   directory for product images
//	-o string   directory for receipt and report exports
//	-n string   store name printed on receipts
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//	-t int      per-operation database timeout (seconds)
//	-b string   S3 bucket that receives exports (empty disables upload)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. MinIO "http://127.0.0.1:9000/")
//	-u string   S3 access key
//	-p string   S3 secret key
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "database_path": "gophpos.db",
//	  "store_name": "Kasir Hijau",
//	  "operation_timeout": "5s",
//	  "s3_bucket": "exports"
//	}
package config
