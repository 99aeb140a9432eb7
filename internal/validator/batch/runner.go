// Package batch runs the structural validator over every configured directory
// and aggregates the outcome into a single RunSummary.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/catalogcheck/internal/app"
	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/common"
	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/document"
	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/schema"
)

// Defaults for Options
const (
	DefaultSchemaFile = "schema.json"
	DefaultExtension  = ".json"
)

// DefaultExclude lists data-file names that are never validated
var DefaultExclude = []string{"package.json"}

// Options controls discovery inside each directory
type Options struct {
	SchemaFile string
	Exclude    []string
	Extension  string
}

// Runner validates translation directories
type Runner struct {
	FS     afero.Fs
	Opts   Options
	Logger app.Logger
}

// NewRunner creates a Runner with defaults filled in
func NewRunner(fs afero.Fs, opts Options) *Runner {
	if opts.SchemaFile == "" {
		opts.SchemaFile = DefaultSchemaFile
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Exclude == nil {
		opts.Exclude = DefaultExclude
	}
	return &Runner{FS: fs, Opts: opts, Logger: app.GetLogger()}
}

// Run processes dirs in order. Expected problems end up in the summary; the
// returned error is reserved for I/O faults and cancellation.
func (r *Runner) Run(ctx context.Context, dirs []string) (*common.RunSummary, error) {
	summary := common.NewRunSummary()

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.runDir(ctx, dir, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

func (r *Runner) runDir(ctx context.Context, dir string, summary *common.RunSummary) error {
	entries, err := afero.ReadDir(r.FS, dir)
	if err != nil {
		r.Logger.Warn("skipping %s: %v", dir, err)
		summary.AddNotice(common.Notice{
			Kind:    common.NoticeDirUnreadable,
			Dir:     dir,
			Message: fmt.Sprintf("cannot read directory: %v", err),
		})
		return nil
	}

	if !hasFile(entries, r.Opts.SchemaFile) {
		r.Logger.Error("no %s in %s, skipping", r.Opts.SchemaFile, dir)
		summary.AddMissingSchema(common.Notice{
			Kind:    common.NoticeSchemaMissing,
			Dir:     dir,
			File:    r.Opts.SchemaFile,
			Message: fmt.Sprintf("%s not found", r.Opts.SchemaFile),
		})
		return nil
	}
	summary.Summary.Directories++

	schemaPath := filepath.Join(dir, r.Opts.SchemaFile)
	raw, err := afero.ReadFile(r.FS, schemaPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", schemaPath, err)
	}
	node, err := schema.Load(raw)
	if err != nil {
		r.Logger.Error("invalid schema %s: %v", schemaPath, err)
		summary.AddParseError(common.Notice{
			Kind:    common.NoticeSchemaInvalid,
			Dir:     dir,
			File:    r.Opts.SchemaFile,
			Message: err.Error(),
		})
		return nil
	}

	files := r.dataFiles(entries)
	r.Logger.Debug("validating %d file(s) in %s", len(files), dir)

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runFile(node, dir, name, summary); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runFile(node *schema.Node, dir, name string, summary *common.RunSummary) error {
	path := filepath.Join(dir, name)

	raw, err := afero.ReadFile(r.FS, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	data, err := document.Parse(raw)
	if err != nil {
		r.Logger.Error("cannot parse %s: %v", path, err)
		summary.AddParseError(common.Notice{
			Kind:    common.NoticeDataInvalid,
			Dir:     dir,
			File:    name,
			Message: fmt.Sprintf("invalid JSON: %v", err),
		})
		return nil
	}

	errs := schema.Validate(node, data, "")
	summary.AddFileResult(common.FileResult{
		File:   path,
		Locale: LocaleOf(name),
		Errors: errs,
	})
	return nil
}

// dataFiles returns candidate data files in directory order
func (r *Runner) dataFiles(entries []os.FileInfo) []string {
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, r.Opts.Extension) || name == r.Opts.SchemaFile || r.excluded(name) {
			continue
		}
		files = append(files, name)
	}
	return files
}

func (r *Runner) excluded(name string) bool {
	for _, ex := range r.Opts.Exclude {
		if name == ex {
			return true
		}
	}
	return false
}

func hasFile(entries []os.FileInfo, name string) bool {
	for _, e := range entries {
		if !e.IsDir() && e.Name() == name {
			return true
		}
	}
	return false
}
