package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacoelho/adm"
	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/internal/catalog"
	"github.com/jacoelho/adm/internal/config"
	"github.com/jacoelho/adm/internal/logging"
)

// errReported marks failures whose details were already written to stderr.
var errReported = errors.New("failure already reported")

type globalFlags struct {
	config            string
	logLevel          string
	logFormat         string
	recursive         bool
	commonDefinitions bool
	cpuProfile        string
	memProfile        string
}

type commandContext struct {
	flags globalFlags

	config     *config.Config
	configPath string
	logger     *slog.Logger
	runID      string

	stopCPUProfile func() error
}

func newCommandContext() *commandContext {
	return &commandContext{logger: logging.NewNop()}
}

// setup loads configuration, applies flag overrides and builds the logger.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = c.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = c.flags.logFormat
	}
	if flags.Changed("recursive") {
		cfg.Parser.RecursiveRootSearch = c.flags.recursive
	}
	if flags.Changed("common-definitions") {
		cfg.Parser.CommonDefinitions = c.flags.commonDefinitions
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.logger, c.runID = logging.WithRunID(logging.NewComponentLogger(logger, cmd.Name()))
	c.config = cfg
	c.configPath = path
	c.logger.Debug("configuration loaded", slog.String("config_path", path))
	return nil
}

func (c *commandContext) parserOptions() adm.ParserOptions {
	return c.config.ParserOptions(c.logger)
}

func (c *commandContext) writerOptions() adm.WriterOptions {
	return c.config.WriterOptions()
}

func (c *commandContext) parseFile(path string) (*document.Document, error) {
	c.logger.Debug("parsing", slog.String(logging.FieldFile, path))
	return adm.ParseFile(path, c.parserOptions())
}

func (c *commandContext) openCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(c.config.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return cat, nil
}

func (c *commandContext) close() error {
	var errs []error
	if c.stopCPUProfile != nil {
		errs = append(errs, c.stopCPUProfile())
		c.stopCPUProfile = nil
	}
	if c.flags.memProfile != "" {
		errs = append(errs, writeMemProfile(c.flags.memProfile))
	}
	return errors.Join(errs...)
}
