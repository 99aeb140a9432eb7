package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/catalogcheck/internal/infra/persistence/file"
	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/batch"
	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/common"
)

type checkOptions struct {
	format             string
	schemaFile         string
	exclude            []string
	allowMissingSchema bool
	output             string
}

func newCheckCmd(s *session) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [dir...]",
		Short: "Validate every catalog in the given directories",
		Long: `Validates each *.json file in the given directories (or the configured ones)
against the schema.json stored beside it. package.json is never treated as a
catalog. Exits 1 when any file fails, cannot be parsed, or a directory has no
schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, s, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: text or json (default from config)")
	cmd.Flags().StringVar(&opts.schemaFile, "schema-file", "", "Schema file name inside each directory")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "Data-file names to skip")
	cmd.Flags().BoolVar(&opts.allowMissingSchema, "allow-missing-schema", false, "Do not fail when a directory has no schema")
	cmd.Flags().StringVar(&opts.output, "output", "", "Also write the JSON report to this file")

	return cmd
}

func runCheck(cmd *cobra.Command, s *session, opts *checkOptions, args []string) error {
	dirs := args
	if len(dirs) == 0 {
		dirs = s.cfg.Directories()
	}

	runOpts := batch.Options{
		SchemaFile: s.cfg.SchemaFile(),
		Exclude:    s.cfg.Exclude(),
	}
	if opts.schemaFile != "" {
		runOpts.SchemaFile = opts.schemaFile
	}
	if cmd.Flags().Changed("exclude") {
		runOpts.Exclude = opts.exclude
	}

	format := s.cfg.Format()
	if opts.format != "" {
		format = opts.format
	}
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	policy := common.Policy{AllowMissingSchema: s.cfg.AllowMissingSchema()}
	if cmd.Flags().Changed("allow-missing-schema") {
		policy.AllowMissingSchema = opts.allowMissingSchema
	}

	runner := batch.NewRunner(s.fs, runOpts)
	summary, err := runner.Run(cmd.Context(), dirs)
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	if err := writeReport(cmd.OutOrStdout(), format, summary, policy); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// --root only confines reads; the report path is taken as given
	if opts.output != "" {
		if err := file.SaveReport(s.baseFs, opts.output, summary); err != nil {
			return err
		}
		GetLogger().Info("report written to %s", opts.output)
	}

	if summary.ExitCode(policy) != 0 {
		return ErrValidationFailed
	}
	return nil
}
