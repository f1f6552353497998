package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cubekit-dev/cubekit/internal/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	out, err := RenderString("by {{.Author}} in {{.Year}}", Context{Author: "ada", Year: "2026"})
	require.NoError(t, err)
	assert.Equal(t, "by ada in 2026", out)
}

func TestRenderStringBadTemplate(t *testing.T) {
	_, err := RenderString("{{.Author", Context{})
	assert.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.txt")
	ctx := Context{Author: "ada"}

	require.NoError(t, RenderFile(path, "hello {{.Author}}\n", ctx, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello ada\n", string(data))

	// existing files are kept unless forced
	require.NoError(t, RenderFile(path, "hello {{.Author}} again\n", ctx, false))
	data, _ = os.ReadFile(path)
	assert.Equal(t, "hello ada\n", string(data))

	require.NoError(t, RenderFile(path, "hello {{.Author}} again\n", ctx, true))
	data, _ = os.ReadFile(path)
	assert.Equal(t, "hello ada again\n", string(data))
}

func TestBuiltinTemplatesRender(t *testing.T) {
	ctx := Context{Author: "ada", Date: "2026-08-30", Year: "2026", Project: "demo"}
	for _, f := range Files {
		out, err := RenderString(f.Template, ctx)
		require.NoError(t, err, f.Path)
		assert.NotEmpty(t, out, f.Path)
	}
}

func TestApplyPatchesGuards(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("target.txt", []byte("a\n"), 0o644))

	patches := []Patch{
		{Spec: patch.Append{File: "target.txt", After: "a", Insert: "gated", Marker: "gated"}, When: "false"},
		{Spec: patch.Append{File: "target.txt", After: "a", Insert: "open", Marker: "open"}},
	}
	require.NoError(t, ApplyPatches(patches, NewEnv()))

	data, err := os.ReadFile("target.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\nopen\n", string(data))
}

func TestApplyPatchesBadGuardAborts(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("target.txt", []byte("a\n"), 0o644))

	patches := []Patch{
		{Spec: patch.Replace{File: "target.txt", Find: "a", Insert: "b"}, When: "no such =="},
		{Spec: patch.Append{File: "target.txt", After: "a", Insert: "never", Marker: "never"}},
	}
	require.Error(t, ApplyPatches(patches, NewEnv()))

	// nothing after the offending spec ran
	data, err := os.ReadFile("target.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(data))
}

func TestApplyPatchesFailFast(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("target.txt", []byte("a\n"), 0o644))

	patches := []Patch{
		{Spec: patch.RegexReplace{File: "target.txt", Pattern: "(", Insert: "x"}},
		{Spec: patch.Append{File: "target.txt", After: "a", Insert: "never", Marker: "never"}},
	}
	require.Error(t, ApplyPatches(patches, NewEnv()))

	data, err := os.ReadFile("target.txt")
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(data))
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, Run(cfg, false))

	for _, dir := range cfg.Directories {
		assert.DirExists(t, dir)
	}
	for _, f := range Files {
		assert.FileExists(t, filepath.FromSlash(f.Path))
	}
	assert.DirExists(t, ".git")

	// running again must not fail and must not duplicate anything
	require.NoError(t, Run(cfg, false))
}

func TestRunPatchesGeneratedMakefile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("Makefile", []byte(`C_SOURCES =  \
Core/Src/main.c \
Core/Src/gpio.c

C_INCLUDES =  \
-ICore/Inc

FLOAT-ABI =
`), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, Run(cfg, false))
	once, err := os.ReadFile("Makefile")
	require.NoError(t, err)

	assert.Contains(t, string(once), `UserCode/app/app.c \`)
	assert.Contains(t, string(once), `-IUserCode/app \`)
	assert.Contains(t, string(once), "FLOAT-ABI = -mfloat-abi=hard")

	// the whole run is idempotent against its own output
	require.NoError(t, Run(cfg, false))
	twice, err := os.ReadFile("Makefile")
	require.NoError(t, err)
	assert.Equal(t, string(once), string(twice))
}
