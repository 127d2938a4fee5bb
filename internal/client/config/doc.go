// Package config loads runtime configuration for the Game Deal Hunter CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults), registered as flag defaults.
//  2. Optional YAML or JSON file selected with --config / -c.
//  3. Command-line flags that were set explicitly.
//
// Supported flags
//
//	-f, --accounts string        account store file
//	    --api-url string         deals API base URL
//	    --redirect-url string    deal redirect URL
//	    --search-delay duration  pause before each search
//	    --log-level string       debug, info, warn or error
//	    --log-format string      text or json
//
// # File schema
//
// Keys are snake_case; durations are strings like "1s":
//
//	accounts_file: /home/me/.dealhunter/users.csv
//	api_base_url: https://www.cheapshark.com/api/1.0
//	search_delay: 500ms
//	log_level: debug
//
// Primary API
//
//   - type Config: holds the settings
//   - func RegisterFlags(*pflag.FlagSet): declares flags with default values
//   - func LoadConfig(*pflag.FlagSet): merges file and flags, then validates
package config
