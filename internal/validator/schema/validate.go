package schema

import (
	"fmt"

	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/document"
)

// Validate compares data against node and returns every mismatch in
// traversal order. It has no side effects; path is "" for the root.
func Validate(node *Node, data document.Value, path string) ValidationErrors {
	var errs ValidationErrors
	validateNode(node, data, path, &errs)
	return errs
}

func validateNode(node *Node, data document.Value, path string, errs *ValidationErrors) {
	if node == nil {
		return
	}

	switch node.Type {
	case TypeObject:
		validateObject(node, data, path, errs)
	case TypeString:
		if data.Kind != document.KindString {
			*errs = append(*errs, typeMismatch(path, TypeString, data))
		}
	default:
		// Unconstrained
	}
}

func validateObject(node *Node, data document.Value, path string, errs *ValidationErrors) {
	if !data.IsObject() {
		*errs = append(*errs, typeMismatch(path, TypeObject, data))
		return
	}

	for _, key := range node.Required {
		if !data.Has(key) {
			*errs = append(*errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("Missing required key: %s", key),
			})
		}
	}

	for _, m := range data.Members {
		child, known := node.Property(m.Key)
		if !known {
			if !node.AllowsAdditional() {
				*errs = append(*errs, ValidationError{
					Path:    path,
					Message: fmt.Sprintf("Unexpected key: %s", m.Key),
				})
			}
			continue
		}
		validateNode(child, m.Value, joinPath(path, m.Key), errs)
	}
}

func typeMismatch(path, expected string, data document.Value) ValidationError {
	return ValidationError{
		Path:    path,
		Message: fmt.Sprintf("Expected %s, got %s", expected, data.Kind),
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
