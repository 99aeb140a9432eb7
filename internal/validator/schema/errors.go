package schema

import (
	"fmt"
	"strings"
)

// rootPath is how an empty path is rendered
const rootPath = "root"

// ValidationError is one structural mismatch
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// DisplayPath returns the path, or "root" for the top level
func (e ValidationError) DisplayPath() string {
	if e.Path == "" {
		return rootPath
	}
	return e.Path
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.DisplayPath(), e.Message)
}

// ValidationErrors is the ordered result of validating one document
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Strings renders every error as "[path] message"
func (ve ValidationErrors) Strings() []string {
	out := make([]string, len(ve))
	for i, e := range ve {
		out[i] = e.Error()
	}
	return out
}
