// Package config loads admtool settings from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jacoelho/adm"
)

//go:embed sample_config.toml
var sampleConfig string

// Parser holds reader settings.
type Parser struct {
	RecursiveRootSearch bool `toml:"recursive_root_search"`
	CommonDefinitions   bool `toml:"common_definitions"`
	MaxDepth            int  `toml:"max_depth"`
	MaxAttrs            int  `toml:"max_attrs"`
}

// Writer holds serialization settings.
type Writer struct {
	WriteDefaultValues bool   `toml:"write_default_values"`
	Structure          string `toml:"structure"`
}

// Logging controls log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Catalog locates the element index database.
type Catalog struct {
	Path string `toml:"path"`
}

// Config encapsulates all configuration values for admtool.
type Config struct {
	Parser  Parser  `toml:"parser"`
	Writer  Writer  `toml:"writer"`
	Logging Logging `toml:"logging"`
	Catalog Catalog `toml:"catalog"`
}

// DefaultConfigPath returns the fully expanded default configuration path.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads configuration from disk, applies defaults and validates the
// result. It returns the resolved path and whether that file exists.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", expanded)
	}
	return expanded, true, nil
}

// ParserOptions converts the parser section to library options.
func (c *Config) ParserOptions(logger *slog.Logger) adm.ParserOptions {
	return adm.NewParserOptions().
		WithRecursiveRootSearch(c.Parser.RecursiveRootSearch).
		WithCommonDefinitions(c.Parser.CommonDefinitions).
		WithMaxDepth(c.Parser.MaxDepth).
		WithMaxAttrs(c.Parser.MaxAttrs).
		WithLogger(logger)
}

// WriterOptions converts the writer section to library options. The
// structure was checked by Validate.
func (c *Config) WriterOptions() adm.WriterOptions {
	structure, _ := adm.ParseStructure(c.Writer.Structure)
	return adm.NewWriterOptions().
		WithStructure(structure).
		WithDefaultValues(c.Writer.WriteDefaultValues)
}

// Encode writes the effective configuration as TOML.
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	encoder := toml.NewEncoder(&b)
	if err := encoder.Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the provided path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
