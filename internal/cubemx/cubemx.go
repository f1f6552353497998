// Package cubemx drives the STM32CubeMX code generator in its headless
// script mode.
package cubemx

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cubekit-dev/cubekit/internal/msg"
	"github.com/google/uuid"
)

// Toolchain flag values. The empty string keeps whatever the ioc file has
// configured.
const (
	ToolchainEwarmV832 = "ewarm-v8.32"
	ToolchainEwarmV8   = "ewarm-v8"
	ToolchainEwarmV7   = "ewarm-v7"
	ToolchainMdkV532   = "mdk-v5.32"
	ToolchainMdkV527   = "mdk-v5.27"
	ToolchainMdkV5     = "mdk-v5"
	ToolchainMdkV4     = "mdk-v4"
	ToolchainCubeIDE   = "cubeide"
	ToolchainMakefile  = "makefile"
	ToolchainCMake     = "cmake"
)

// displayNames maps a toolchain flag value to the name CubeMX expects in
// its script language.
var displayNames = map[string]string{
	ToolchainEwarmV832: "EWARM V8.32",
	ToolchainEwarmV8:   "EWARM V8",
	ToolchainEwarmV7:   "EWARM V7",
	ToolchainMdkV532:   "MDK-ARM V5.32",
	ToolchainMdkV527:   "MDK-ARM V5.27",
	ToolchainMdkV5:     "MDK-ARM V5",
	ToolchainMdkV4:     "MDK-ARM V4",
	ToolchainCubeIDE:   "STM32CubeIDE",
	ToolchainMakefile:  "Makefile",
	ToolchainCMake:     "CMake",
}

// Toolchains returns the recognized flag values with their CubeMX names.
func Toolchains() map[string]string {
	return displayNames
}

var errNoIOC = errors.New("no .ioc file found in the current directory")

// FindIOC locates the single .ioc file in dir. Zero or multiple matches
// are errors: CubeMX script mode needs exactly one project file.
func FindIOC(dir string) (string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.ioc", doublestar.WithFilesOnly())
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errNoIOC
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("multiple .ioc files found: %s", strings.Join(matches, ", "))
	}
	return filepath.Join(dir, matches[0]), nil
}

// generateScript builds the CubeMX script that regenerates code for an
// existing ioc file. couplefilesbyip makes CubeMX emit one .c/.h pair per
// peripheral instead of dumping everything into main.c.
func generateScript(iocFile, toolchain string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "config load %s\n", iocFile)
	if toolchain != "" {
		fmt.Fprintf(&sb, "project toolchain %q\n", displayNames[toolchain])
		if toolchain == ToolchainCubeIDE {
			sb.WriteString("project generateunderroot 1\n")
		}
	}
	sb.WriteString("project couplefilesbyip 1\n")
	sb.WriteString("project generate\n")
	sb.WriteString("exit\n")
	return sb.String()
}

// createScript builds the CubeMX script that imports an ioc file into a
// fresh project directory.
func createScript(name, dir, iocFile, toolchain string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "config load %s\n", iocFile)
	fmt.Fprintf(&sb, "project name %s\n", name)
	fmt.Fprintf(&sb, "project path %s\n", dir)
	if toolchain != "" {
		fmt.Fprintf(&sb, "project toolchain %q\n", displayNames[toolchain])
		if toolchain == ToolchainCubeIDE {
			sb.WriteString("project generateunderroot 1\n")
		}
	}
	sb.WriteString("project couplefilesbyip 1\n")
	sb.WriteString("project generate\n")
	sb.WriteString("exit\n")
	return sb.String()
}

// Generate regenerates code for the single ioc file in the working
// directory, switching the project toolchain first when one is given.
func Generate(toolchain string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	ioc, err := FindIOC(cwd)
	if err != nil {
		return err
	}
	return runScript(generateScript(ioc, toolchain))
}

// CreateProject imports iocFile into a new project under dir.
func CreateProject(name, dir, iocFile, toolchain string) error {
	return runScript(createScript(name, dir, iocFile, toolchain))
}

// runScript writes the script to a throwaway file and hands it to
// stm32cubemx. CubeMX only takes scripts from disk, so the file lives for
// the duration of the run.
func runScript(script string) error {
	path := filepath.Join(os.TempDir(), "cubekit-"+uuid.NewString()+".script")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return err
	}
	defer os.Remove(path)

	exe, err := exec.LookPath("stm32cubemx")
	if err != nil {
		return fmt.Errorf("stm32cubemx not found in PATH: %w", err)
	}

	cmd := exec.Command(exe, "-q", "-s", path)
	cmd.Stdout = &msg.IndentWriter{Indent: "  ", W: os.Stdout}
	cmd.Stderr = &msg.IndentWriter{Indent: "  ", W: os.Stderr}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("stm32cubemx failed: %w", err)
	}
	return nil
}
