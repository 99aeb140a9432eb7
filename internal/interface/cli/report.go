package cli

import (
	"fmt"
	"io"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/common"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func writeReport(w io.Writer, format string, summary *common.RunSummary, policy common.Policy) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return writeTextReport(w, summary, policy)
}

func writeTextReport(w io.Writer, summary *common.RunSummary, policy common.Policy) error {
	if !summary.Failed(policy) {
		_, err := fmt.Fprintf(w, "OK: all %d translation files are valid\n", summary.Summary.Files)
		return err
	}

	for _, res := range summary.Results {
		header := res.File
		if res.Locale != "" {
			header = fmt.Sprintf("%s (%s)", res.File, res.Locale)
		}
		if _, err := fmt.Fprintf(w, "FAIL: %s\n", header); err != nil {
			return err
		}
		for _, e := range res.Errors {
			if _, err := fmt.Fprintf(w, "  - %s\n", e.Error()); err != nil {
				return err
			}
		}
	}

	for _, n := range summary.Notices {
		if n.Kind == common.NoticeDirUnreadable {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", noticeLabel(n), n.Message); err != nil {
			return err
		}
	}

	s := summary.Summary
	_, err := fmt.Fprintf(w, "SUMMARY: directories=%d files=%d failed=%d errors=%d parse_errors=%d missing_schemas=%d\n",
		s.Directories, s.Files, s.Failed, s.TotalErrors, s.ParseErrors, s.MissingSchemas)
	return err
}

func noticeLabel(n common.Notice) string {
	target := n.Dir
	if n.File != "" {
		target = filepath.Join(n.Dir, n.File)
	}
	return fmt.Sprintf("%s %s", n.Kind, target)
}
