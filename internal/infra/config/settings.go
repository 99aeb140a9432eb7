package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/catalogcheck/internal/app/config"
)

// DefaultConfigFile is looked up in the working directory when no path is given
const DefaultConfigFile = ".catalogcheck.yml"

// Default values applied to unset fields
var (
	DefaultDirectories = []string{"locales"}
	DefaultExclude     = []string{"package.json"}
)

// RawSettings is the structure of .catalogcheck.yml.
// Pointer fields distinguish "unset" from zero values.
type RawSettings struct {
	// Discovery
	Directories *[]string `yaml:"directories"`
	SchemaFile  *string   `yaml:"schema_file"`
	Exclude     *[]string `yaml:"exclude"`

	// Policy
	AllowMissingSchema *bool `yaml:"allow_missing_schema"`

	// Output and logging
	Format      *string `yaml:"format"`
	StderrLevel *string `yaml:"stderr_level"`
}

// LoadSettings loads configuration from path on fs.
// A missing file yields defaults; a malformed one is an error.
func LoadSettings(fs afero.Fs, path string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	configPath := ""

	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if err := decodeStrict(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		configSource = "yaml"
		configPath = path
	case errors.Is(err, os.ErrNotExist):
		// Defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyDefaults(settings)

	if err := validateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return buildAppConfig(settings, configSource, configPath), nil
}

// decodeStrict rejects unknown keys. An empty file is accepted.
func decodeStrict(data []byte, settings *RawSettings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings) {
	if settings.Directories == nil {
		v := append([]string(nil), DefaultDirectories...)
		settings.Directories = &v
	}
	if settings.SchemaFile == nil {
		v := "schema.json"
		settings.SchemaFile = &v
	}
	if settings.Exclude == nil {
		v := append([]string(nil), DefaultExclude...)
		settings.Exclude = &v
	}

	if settings.AllowMissingSchema == nil {
		v := false
		settings.AllowMissingSchema = &v
	}

	if settings.Format == nil {
		v := "text"
		settings.Format = &v
	}
	if settings.StderrLevel == nil {
		v := "warn"
		settings.StderrLevel = &v
	}
}

func validateSettings(settings *RawSettings) error {
	if strings.TrimSpace(*settings.SchemaFile) == "" {
		return errors.New("schema_file must not be empty")
	}
	switch *settings.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", *settings.Format)
	}
	return nil
}

// buildAppConfig converts RawSettings to AppConfig
func buildAppConfig(settings *RawSettings, configSource, configPath string) *config.AppConfig {
	return config.NewAppConfig(
		*settings.Directories,
		*settings.SchemaFile,
		*settings.Exclude,
		*settings.AllowMissingSchema,
		*settings.Format,
		*settings.StderrLevel,
		configSource,
		configPath,
	)
}
