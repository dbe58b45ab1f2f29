// Package errors defines the typed error taxonomy for package detection and
// parsing. Each kind carries enough context to point a caller at the
// offending path, element, or field without a second lookup.
package errors

import (
	"fmt"
	"strings"
)

// DetectionError is returned when no parser matches a package's layout.
type DetectionError struct {
	Root     string
	Probes   []string // description of each probe attempted, in order
	Observed []string // paths observed at the package root
}

func NewDetectionError(root string, probes, observed []string) *DetectionError {
	return &DetectionError{Root: root, Probes: probes, Observed: observed}
}

func (e *DetectionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "could not determine package type at %q; probes attempted:\n", e.Root)
	for _, p := range e.Probes {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	if len(e.Observed) == 0 {
		b.WriteString("root listing was empty")
	} else {
		fmt.Fprintf(&b, "observed at root: %s", strings.Join(e.Observed, ", "))
	}
	return b.String()
}

// MissingManifest is returned when a parser's expected manifest file is not
// present under the package root.
type MissingManifest struct {
	Name string
	Root string
}

func NewMissingManifest(name, root string) *MissingManifest {
	return &MissingManifest{Name: name, Root: root}
}

func (e *MissingManifest) Error() string {
	return fmt.Sprintf("manifest %q not found under %q", e.Name, e.Root)
}

// ManifestParseError wraps an underlying XML/INI/CSV decode failure.
type ManifestParseError struct {
	Path       string
	Underlying error
}

func NewManifestParseError(path string, err error) *ManifestParseError {
	return &ManifestParseError{Path: path, Underlying: err}
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %q: %v", e.Path, e.Underlying)
}

func (e *ManifestParseError) Unwrap() error { return e.Underlying }

// SchemaValidationError is returned when a SCORM 2004 manifest fails
// validation against a configured schema set.
type SchemaValidationError struct {
	Path       string
	Violations []string
}

func NewSchemaValidationError(path string, violations []string) *SchemaValidationError {
	return &SchemaValidationError{Path: path, Violations: violations}
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("manifest %q failed schema validation: %s", e.Path, strings.Join(e.Violations, "; "))
}

// MissingRequiredField is returned when a format-mandated field (title,
// launch URL, ...) is empty after parsing.
type MissingRequiredField struct {
	Field string
	Path  string
}

func NewMissingRequiredField(field, path string) *MissingRequiredField {
	return &MissingRequiredField{Field: field, Path: path}
}

func (e *MissingRequiredField) Error() string {
	return fmt.Sprintf("required field %q is empty in %q", e.Field, e.Path)
}

// IoError wraps an underlying access-layer failure (open, read, list, stat).
type IoError struct {
	Operation  string
	Path       string
	Underlying error
}

func NewIoError(op, path string, err error) *IoError {
	return &IoError{Operation: op, Path: path, Underlying: err}
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("io error during %s: %v", e.Operation, e.Underlying)
	}
	return fmt.Sprintf("io error during %s for %q: %v", e.Operation, e.Path, e.Underlying)
}

func (e *IoError) Unwrap() error { return e.Underlying }

// StrictValidationFailure is returned instead of a successful parse when
// strict enum validation is enabled and the parse recovered one or more
// unrecognized enum values instead of treating them as warnings.
type StrictValidationFailure struct {
	Path     string
	Warnings []Warning
}

func NewStrictValidationFailure(path string, warnings []Warning) *StrictValidationFailure {
	return &StrictValidationFailure{Path: path, Warnings: warnings}
}

func (e *StrictValidationFailure) Error() string {
	parts := make([]string, len(e.Warnings))
	for i, w := range e.Warnings {
		parts[i] = w.String()
	}
	return fmt.Sprintf("manifest %q failed strict enum validation: %s", e.Path, strings.Join(parts, "; "))
}

// Warning is a single recovered anomaly: unknown enum value, bad numeric
// literal, missing external LOM file, or an aliased (mis-spelled) element
// accepted via fuzzy match. It is non-fatal by construction.
type Warning struct {
	FieldPath string
	Message   string
}

func (w Warning) String() string {
	if w.FieldPath == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.FieldPath, w.Message)
}

// WarningList aggregates recovered anomalies attached to a successful parse
// result. Error renders a single warning on its own and several with a
// count prefix.
type WarningList struct {
	Warnings []Warning
}

func NewWarningList(warnings ...Warning) *WarningList {
	return &WarningList{Warnings: warnings}
}

// Add appends a warning and returns the receiver for chaining.
func (w *WarningList) Add(fieldPath, message string) *WarningList {
	w.Warnings = append(w.Warnings, Warning{FieldPath: fieldPath, Message: message})
	return w
}

// Merge appends every warning from other into w.
func (w *WarningList) Merge(other *WarningList) {
	if other == nil {
		return
	}
	w.Warnings = append(w.Warnings, other.Warnings...)
}

func (w *WarningList) Error() string {
	if w == nil || len(w.Warnings) == 0 {
		return "no warnings"
	}
	if len(w.Warnings) == 1 {
		return w.Warnings[0].String()
	}
	parts := make([]string, len(w.Warnings))
	for i, warn := range w.Warnings {
		parts[i] = warn.String()
	}
	return fmt.Sprintf("%d warnings: %s", len(w.Warnings), strings.Join(parts, "; "))
}

func (w *WarningList) Empty() bool {
	return w == nil || len(w.Warnings) == 0
}
