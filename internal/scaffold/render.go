package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/cubekit-dev/cubekit/internal/msg"
)

// Context carries the values substituted into the built-in templates.
type Context struct {
	Author  string
	Date    string
	Year    string
	Project string
}

// NewContext fills a render context for the current run: author from git
// config, dates from the wall clock, project name from the directory.
func NewContext() Context {
	now := time.Now()
	cwd, err := os.Getwd()
	project := "project"
	if err == nil {
		project = filepath.Base(cwd)
	}

	return Context{
		Author:  Author(),
		Date:    now.Format("2006-01-02"),
		Year:    now.Format("2006"),
		Project: project,
	}
}

// RenderString executes one template against ctx.
func RenderString(tmpl string, ctx any) (string, error) {
	t, err := template.New("tpl").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderFile renders one template to path, creating parent directories as
// needed. Existing files are left alone unless force is set.
func RenderFile(path, tmpl string, ctx Context, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		msg.Warn("skip existing %s", path)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	content, err := RenderString(tmpl, ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	msg.Info("generated %s", filepath.ToSlash(path))
	return nil
}
