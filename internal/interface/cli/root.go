package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/catalogcheck/internal/app/config"
	infraConfig "github.com/YoshitsuguKoike/catalogcheck/internal/infra/config"
	"github.com/YoshitsuguKoike/catalogcheck/internal/interface/cli/version"
)

// ErrValidationFailed is returned when a run finds problems. The report has
// already been written, so callers only need to exit non-zero.
var ErrValidationFailed = errors.New("validation failed")

// ConfigEnv names the environment variable that selects the config file
const ConfigEnv = "CATALOGCHECK_CONFIG"

// session carries state shared by subcommands of one invocation
type session struct {
	baseFs     afero.Fs
	fs         afero.Fs
	cfg        config.Config
	configPath string
	rootDir    string
	logLevel   string
}

// NewRoot builds the command tree on the host filesystem
func NewRoot() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(baseFs afero.Fs) *cobra.Command {
	s := &session{baseFs: baseFs}

	cmd := &cobra.Command{
		Use:           "catalogcheck",
		Short:         "Validate translation catalogs against their schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}

	cmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Config file (default "+infraConfig.DefaultConfigFile+", or $"+ConfigEnv+")")
	cmd.PersistentFlags().StringVar(&s.rootDir, "root", "", "Resolve all paths relative to this directory")
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "Stderr log level (debug|info|warn|error)")

	cmd.AddCommand(newCheckCmd(s))
	cmd.AddCommand(version.NewCommand())
	return cmd
}

// load sets up the filesystem, configuration and loggers.
// Priority: flags > config file > defaults
func (s *session) load(cmd *cobra.Command) error {
	// Reads only; nothing under the checked tree is ever written
	s.fs = s.baseFs
	if s.rootDir != "" {
		s.fs = afero.NewBasePathFs(s.fs, s.rootDir)
	}
	s.fs = afero.NewReadOnlyFs(s.fs)

	path := s.configPath
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(ConfigEnv); env != "" {
			path, explicit = env, true
		} else {
			path = infraConfig.DefaultConfigFile
		}
	}

	if explicit {
		exists, err := afero.Exists(s.fs, path)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if !exists {
			return fmt.Errorf("config: %s not found", path)
		}
	}

	cfg, err := infraConfig.LoadSettings(s.fs, path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	s.cfg = cfg

	level := cfg.StderrLevel()
	if s.logLevel != "" {
		level = s.logLevel
	}
	InitGlobalLogger(level, cmd.ErrOrStderr())
	InitializeLoggers(GetLogger())

	GetLogger().Debug("config source=%s path=%s", cfg.ConfigSource(), cfg.ConfigPath())
	return nil
}
