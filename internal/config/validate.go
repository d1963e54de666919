package config

import (
	"errors"
	"fmt"

	"github.com/jacoelho/adm"
	"github.com/jacoelho/adm/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return errors.New("parser.max_depth must be >= 0")
	}
	if c.Parser.MaxAttrs < 0 {
		return errors.New("parser.max_attrs must be >= 0")
	}
	if _, err := adm.ParseStructure(c.Writer.Structure); err != nil {
		return fmt.Errorf("writer.structure: %w", err)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Catalog.Path == "" {
		return errors.New("catalog.path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case logging.FormatAuto, logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
