package config

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, raw string) *Config {
	t.Helper()
	var cfg Config
	_, err := toml.Decode(raw, &cfg)
	require.NoError(t, err)
	require.NoError(t, Normalize(&cfg))
	return &cfg
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := loadConfig(t, `
[common]
path = "local:///tmp/out"
format = "parquet"
`)
	require.Equal(t, float64(1), cfg.Common.ScaleFactor)
	require.Equal(t, 1, cfg.Common.NumParts)
	require.Equal(t, ",", cfg.CSV.Separator)
	require.Equal(t, int64(1<<20), cfg.Parquet.PageSizeBytes)
	require.NoError(t, Validate(cfg))
}

func TestNormalizePageSize(t *testing.T) {
	cfg := loadConfig(t, `
[common]
path = "local:///tmp/out"
format = "parquet"

[parquet]
page_size = "64KB"
`)
	require.Equal(t, int64(64_000), cfg.Parquet.PageSizeBytes)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing path", `
[common]
format = "csv"
`},
		{"bad format", `
[common]
path = "local:///tmp/out"
format = "orc"
`},
		{"negative scale factor", `
[common]
path = "local:///tmp/out"
format = "csv"
scale_factor = -1.0
`},
		{"both backends", `
[common]
path = "s3://bucket/prefix"
format = "csv"

[s3]
region = "us-west-2"

[gcs]
credential = "/tmp/cred.json"
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := loadConfig(t, tc.raw)
			require.Error(t, Validate(cfg))
		})
	}
}

func TestTableNames(t *testing.T) {
	cfg := loadConfig(t, `
[common]
path = "local:///tmp/out"
format = "csv"
tables = "tpch_nation, tpch_orders"
`)
	require.Equal(t, []string{"tpch_nation", "tpch_orders"}, cfg.TableNames())

	cfg.Common.Tables = ""
	require.Nil(t, cfg.TableNames())
}
