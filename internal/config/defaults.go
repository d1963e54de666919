package config

const (
	defaultConfigPath = "~/.config/admtool/config.toml"
	defaultCatalog    = "~/.local/share/admtool/catalog.db"
	defaultStructure  = "ebucore"
	defaultLogFormat  = "auto"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Writer: Writer{
			Structure: defaultStructure,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Catalog: Catalog{
			Path: defaultCatalog,
		},
	}
}
