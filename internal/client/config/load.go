package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig      = "config"
	FlagAccounts    = "accounts"
	FlagAPIURL      = "api-url"
	FlagRedirectURL = "redirect-url"
	FlagSearchDelay = "search-delay"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
)

// flagKeys maps flag names to config keys. Flags not listed here are not
// configuration values.
var flagKeys = map[string]string{
	FlagAccounts:    "accounts_file",
	FlagAPIURL:      "api_base_url",
	FlagRedirectURL: "redirect_url",
	FlagSearchDelay: "search_delay",
	FlagLogLevel:    "log_level",
	FlagLogFormat:   "log_format",
}

// RegisterFlags declares the configuration flags on fs with the built-in
// defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a YAML or JSON config file")
	fs.StringP(FlagAccounts, "f", d.AccountsFile, "account store file")
	fs.String(FlagAPIURL, d.APIBaseURL, "deals API base URL")
	fs.String(FlagRedirectURL, d.RedirectURL, "deal redirect URL")
	fs.Duration(FlagSearchDelay, d.SearchDelay, "pause before each search")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, d.LogFormat, "log format (text or json)")
}

// LoadConfig builds a Config from the flags registered with RegisterFlags and
// the optional config file they name. Explicitly set flags win over the
// file; the file wins over flag defaults.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("reading --%s: %w", FlagConfig, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagKey(fs)), nil); err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func flagKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}
