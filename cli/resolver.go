package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// The YAML document is converted as follows:
//   - Top-level keys map to flag names; hyphens (e.g., "log-level") may be
//     written with underscores in the config file (e.g., "log_level")
//   - String values should be quoted if ambiguous
//   - Boolean values are true or false (unquoted)
//   - Numbers are unquoted
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	values := make(map[string]any)

	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		// Empty or malformed config - return empty resolver
		if err == io.EOF {
			return config{}, nil
		}

		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	flat := make(config, len(values))
	for key, value := range values {
		// Kong requires numbers as strings for parsing
		switch v := value.(type) {
		case int64:
			flat[key] = strconv.FormatInt(v, 10)
		case uint64:
			flat[key] = strconv.FormatUint(v, 10)
		case float64:
			flat[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			flat[key] = value
		}
	}

	return flat, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys
	// may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - let Kong use defaults
	return nil, nil
}
