package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Writer.Structure = strings.ToLower(strings.TrimSpace(c.Writer.Structure))
	if c.Writer.Structure == "" {
		c.Writer.Structure = defaultStructure
	}
	c.normalizeLogging()

	var err error
	if c.Catalog.Path, err = expandPath(strings.TrimSpace(c.Catalog.Path)); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
