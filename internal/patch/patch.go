// Package patch applies declarative, idempotent text edits to files
// generated by earlier pipeline stages. Re-running a patch against an
// already-patched file is a no-op.
package patch

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Result reports what Apply did with a single spec.
type Result int

const (
	// Skipped means the edit was already applied, produced no change, or
	// the target file does not exist.
	Skipped Result = iota
	// Applied means the target file was rewritten.
	Applied
)

// Spec is one declarative edit. Append, Replace and RegexReplace are the
// only implementations.
type Spec interface {
	// Path returns the target file, relative to the working directory.
	Path() string

	// patch transforms the file content. The bool is false when the edit
	// is considered already applied.
	patch(content string) (string, bool, error)
}

// Append inserts a line containing Insert below every line containing the
// After substring. Marker is a sentinel checked anywhere in the file before
// editing: if present, the edit is considered already applied, so it should
// be a stable substring of the inserted text rather than transient content.
type Append struct {
	File   string
	After  string
	Insert string
	Marker string
}

func (a Append) Path() string { return a.File }

func (a Append) patch(content string) (string, bool, error) {
	if strings.Contains(content, a.Marker) {
		return "", false, nil
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		b.WriteString(line)
		b.WriteByte('\n')
		if strings.Contains(line, a.After) {
			b.WriteString(a.Insert)
			b.WriteByte('\n')
		}
	}
	return b.String(), true, nil
}

// Replace substitutes every literal occurrence of Find with Insert. The
// inserted text doubles as the already-applied marker.
type Replace struct {
	File   string
	Find   string
	Insert string
}

func (r Replace) Path() string { return r.File }

func (r Replace) patch(content string) (string, bool, error) {
	if strings.Contains(content, r.Insert) {
		return "", false, nil
	}
	return strings.ReplaceAll(content, r.Find, r.Insert), true, nil
}

// RegexReplace substitutes every match of Pattern with Insert, which may
// reference capture groups (${1} and friends).
type RegexReplace struct {
	File    string
	Pattern string
	Insert  string
}

func (r RegexReplace) Path() string { return r.File }

func (r RegexReplace) patch(content string) (string, bool, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return "", false, fmt.Errorf("invalid pattern %q: %w", r.Pattern, err)
	}

	// Skip only when the pattern still matches AND the literal insert text
	// is present. A capture-group rewrite never reproduces Insert verbatim,
	// so this check alone cannot prove prior application; the replace-all
	// below then simply matches nothing and the unchanged content is not
	// written.
	if re.MatchString(content) && strings.Contains(content, r.Insert) {
		return "", false, nil
	}
	return re.ReplaceAllString(content, r.Insert), true, nil
}

// Apply runs one spec against its target file. A missing target is not an
// error: patches address files that earlier pipeline stages may not have
// produced. The file is rewritten only when a non-skipped edit actually
// changed its content; an invalid pattern or any other read/write failure
// is returned to the caller.
func Apply(spec Spec) (Result, error) {
	data, err := os.ReadFile(spec.Path())
	if errors.Is(err, os.ErrNotExist) {
		return Skipped, nil
	}
	if err != nil {
		return Skipped, err
	}
	content := string(data)

	patched, applied, err := spec.patch(content)
	if err != nil {
		return Skipped, err
	}
	if !applied || patched == content {
		return Skipped, nil
	}

	if err := os.WriteFile(spec.Path(), []byte(patched), 0o644); err != nil {
		return Skipped, err
	}
	return Applied, nil
}
