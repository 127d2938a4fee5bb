package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "users.csv", c.AccountsFile)
	assert.Equal(t, "https://www.cheapshark.com/api/1.0", c.APIBaseURL)
	assert.Equal(t, "https://www.cheapshark.com/redirect", c.RedirectURL)
	assert.Equal(t, time.Second, c.SearchDelay)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(t))
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(t,
		"-f", "/tmp/accounts.csv",
		"--api-url", "http://localhost:8080/api",
		"--search-delay", "0s",
		"--log-level", "DEBUG",
		"--log-format", "json",
	))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/accounts.csv", cfg.AccountsFile)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, time.Duration(0), cfg.SearchDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://www.cheapshark.com/redirect", cfg.RedirectURL)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := writeFile(t, "dealhunter.yaml", `
accounts_file: /data/users.csv
search_delay: 250ms
log_level: info
`)

	cfg, err := LoadConfig(newFlagSet(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "/data/users.csv", cfg.AccountsFile)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	// keys absent from the file keep flag defaults
	assert.Equal(t, "https://www.cheapshark.com/api/1.0", cfg.APIBaseURL)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := writeFile(t, "dealhunter.json", `{"redirect_url":"https://deals.example/go","log_format":"json"}`)

	cfg, err := LoadConfig(newFlagSet(t, "-c", path))
	require.NoError(t, err)

	assert.Equal(t, "https://deals.example/go", cfg.RedirectURL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_SetFlagBeatsFile(t *testing.T) {
	path := writeFile(t, "dealhunter.yaml", "accounts_file: /from/file.csv\nlog_level: info\n")

	cfg, err := LoadConfig(newFlagSet(t, "-c", path, "--accounts", "/from/flag.csv"))
	require.NoError(t, err)

	assert.Equal(t, "/from/flag.csv", cfg.AccountsFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(newFlagSet(t, "-c", filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := writeFile(t, "bad.yaml", "accounts_file: [unterminated\n")

	_, err := LoadConfig(newFlagSet(t, "-c", path))
	require.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown log format", args: []string{"--log-format", "xml"}},
		{name: "unknown log level", args: []string{"--log-level", "verbose"}},
		{name: "empty accounts path", args: []string{"--accounts", ""}},
		{name: "relative api url", args: []string{"--api-url", "/api/1.0"}},
		{name: "relative redirect url", args: []string{"--redirect-url", "redirect"}},
		{name: "negative delay", args: []string{"--search-delay", "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(newFlagSet(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}
