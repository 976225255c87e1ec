package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	withChanges := func(fn func(c *Config)) *Config {
		c := base()
		fn(c)
		return c
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"-d", "shop.db", "-n", "Toko Maju", "-t", "10"},
			expected: withChanges(func(c *Config) {
				c.DatabasePath = "shop.db"
				c.StoreName = "Toko Maju"
				c.OperationTimeout = 10 * time.Second
			})},
		{name: "Test2 S3 flags", args: []string{"-b", "exports", "-e", "http://127.0.0.1:9000/", "-u", "ak", "-p", "sk"},
			expected: withChanges(func(c *Config) {
				c.S3Bucket = "exports"
				c.S3BaseEndpoint = "http://127.0.0.1:9000/"
				c.S3AccessKey = "ak"
				c.S3SecretKey = "sk"
			})},
		{name: "Test3 unknown flags ignored", args: []string{"-c", "cfg.json", "-x", "1", "-l", "debug"},
			expected: withChanges(func(c *Config) { c.LogLevel = "debug" })},
		{name: "Test4 incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
