package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format string

// Supported file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the file format from the path's extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, filepath.Ext(path))
	}
}

// Load reads a config file over DefaultConfig, applies CHUNKKIT_
// environment overrides and validates the result. Unknown keys in the
// file are rejected.
func Load(path string) (Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(data, format, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over DefaultConfig and validates it. The
// environment is not consulted.
func Parse(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()
	if err := decode(data, format, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: parse yaml: %w", ErrInvalidConfig, err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("%w: parse toml: %w", ErrInvalidConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("%w: unknown toml keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: parse json: %w", ErrInvalidConfig, err)
		}

	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, format)
	}
	return nil
}
