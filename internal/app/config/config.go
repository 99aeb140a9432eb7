package config

import "slices"

// Config provides read-only access to application configuration.
// The app layer depends on this interface rather than on the file format.
type Config interface {
	// Discovery
	Directories() []string // Directories to scan, in order
	SchemaFile() string    // Schema file name inside each directory
	Exclude() []string     // Data-file names that are never validated

	// Policy
	AllowMissingSchema() bool // Directories without a schema do not fail the run

	// Output and logging
	Format() string      // "text" or "json"
	StderrLevel() string // Stderr log level

	// Metadata
	ConfigSource() string // "yaml" or "default"
	ConfigPath() string   // Path of the loaded file, if any
}

// AppConfig is the concrete implementation of Config
type AppConfig struct {
	directories []string
	schemaFile  string
	exclude     []string

	allowMissingSchema bool

	format      string
	stderrLevel string

	configSource string
	configPath   string
}

// NewAppConfig creates an AppConfig
func NewAppConfig(
	directories []string,
	schemaFile string,
	exclude []string,
	allowMissingSchema bool,
	format string,
	stderrLevel string,
	configSource string,
	configPath string,
) *AppConfig {
	return &AppConfig{
		directories:        directories,
		schemaFile:         schemaFile,
		exclude:            exclude,
		allowMissingSchema: allowMissingSchema,
		format:             format,
		stderrLevel:        stderrLevel,
		configSource:       configSource,
		configPath:         configPath,
	}
}

// Directories returns the directories to scan
func (c *AppConfig) Directories() []string {
	return slices.Clone(c.directories)
}

// SchemaFile returns the schema file name
func (c *AppConfig) SchemaFile() string {
	return c.schemaFile
}

// Exclude returns the excluded data-file names
func (c *AppConfig) Exclude() []string {
	return slices.Clone(c.exclude)
}

// AllowMissingSchema returns whether a missing schema is tolerated
func (c *AppConfig) AllowMissingSchema() bool {
	return c.allowMissingSchema
}

// Format returns the report format
func (c *AppConfig) Format() string {
	return c.format
}

// StderrLevel returns the stderr log level
func (c *AppConfig) StderrLevel() string {
	return c.stderrLevel
}

// ConfigSource returns where the configuration came from
func (c *AppConfig) ConfigSource() string {
	return c.configSource
}

// ConfigPath returns the path of the loaded configuration file
func (c *AppConfig) ConfigPath() string {
	return c.configPath
}
