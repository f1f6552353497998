// Package makefile extracts a structured configuration from the Makefile
// that STM32CubeMX generates for gcc-based projects.
package makefile

import (
	"regexp"
	"strings"
)

// Config holds the values extracted from a generated Makefile. Includes and
// Defines are deduplicated (first occurrence wins); every other list keeps
// all occurrences in file order.
type Config struct {
	Target     string
	BuildDir   string
	CSources   []string
	AsmSources []string
	Includes   []string
	Defines    []string
	Cflags     []string
	Asflags    []string
	Ldflags    []string
	Libs       []string
	Ldscript   string
}

var assignRegex = regexp.MustCompile(`^([A-Z0-9_-]+)\s*[:+]?=\s*(.*)$`)

// unfold joins physical lines ending in a backslash continuation into single
// logical lines, one space between fragments. A dangling continuation at end
// of input still emits its accumulated line.
func unfold(lines []string) []string {
	var result []string
	var current strings.Builder
	for _, l := range lines {
		trimmed := strings.TrimRight(l, " \t\r")
		if strings.HasSuffix(trimmed, `\`) {
			current.WriteString(strings.TrimRight(trimmed[:len(trimmed)-1], " \t"))
			current.WriteByte(' ')
		} else {
			current.WriteString(trimmed)
			result = append(result, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

// Parse extracts a Config from Makefile content. It only looks at
// assignments of the keys CubeMX emits; everything else (rules, recipes,
// unknown variables, malformed lines) is ignored. Parse never fails.
func Parse(content string) *Config {
	lines := unfold(strings.Split(content, "\n"))

	cfg := new(Config)
	includeSet := make(map[string]bool)
	defineSet := make(map[string]bool)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := assignRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, val := m[1], m[2]

		switch key {
		case "TARGET":
			cfg.Target = val
		case "BUILD_DIR":
			cfg.BuildDir = val
		case "LDSCRIPT":
			cfg.Ldscript = val
		case "C_SOURCES":
			cfg.CSources = append(cfg.CSources, strings.Fields(val)...)
		case "ASM_SOURCES":
			cfg.AsmSources = append(cfg.AsmSources, strings.Fields(val)...)
		case "C_INCLUDES", "AS_INCLUDES":
			for _, token := range strings.Fields(val) {
				path, ok := strings.CutPrefix(token, "-I")
				if !ok {
					continue
				}
				if !includeSet[path] {
					includeSet[path] = true
					cfg.Includes = append(cfg.Includes, path)
				}
			}
		case "C_DEFS", "AS_DEFS":
			for _, token := range strings.Fields(val) {
				name := token
				if s, ok := strings.CutPrefix(token, "-D"); ok {
					name = s
				} else if s, ok := strings.CutPrefix(token, "-include"); ok {
					name = strings.TrimSpace(s)
				}
				if name != "" && !defineSet[name] {
					defineSet[name] = true
					cfg.Defines = append(cfg.Defines, name)
				}
			}
		case "CFLAGS":
			cfg.Cflags = append(cfg.Cflags, strings.Fields(val)...)
		case "ASFLAGS":
			cfg.Asflags = append(cfg.Asflags, strings.Fields(val)...)
		case "LDFLAGS":
			cfg.Ldflags = append(cfg.Ldflags, strings.Fields(val)...)
		case "LIBS":
			cfg.Libs = append(cfg.Libs, strings.Fields(val)...)
		}
	}

	return cfg
}
