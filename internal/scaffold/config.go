package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cubekit-dev/cubekit/internal/patch"
	"github.com/pelletier/go-toml/v2"
)

// Config drives a scaffolding run: directories to create and the ordered
// patch list to apply against the generated tree.
type Config struct {
	Directories []string
	Patches     []Patch
}

// Patch pairs one patch spec with an optional guard expression. An empty
// guard always allows the spec.
type Patch struct {
	Spec patch.Spec
	When string
}

// patchRecord is the on-disk shape of one [[patch]] table. Which fields are
// meaningful depends on mode.
type patchRecord struct {
	Mode    string `toml:"mode"`
	File    string `toml:"file"`
	After   string `toml:"after"`
	Insert  string `toml:"insert"`
	Marker  string `toml:"marker"`
	Find    string `toml:"find"`
	Pattern string `toml:"pattern"`
	When    string `toml:"when"`
}

type rawConfig struct {
	Directories []string      `toml:"directories"`
	Patches     []patchRecord `toml:"patch"`
}

func (r patchRecord) spec() (patch.Spec, error) {
	if r.File == "" {
		return nil, errors.New("patch is missing a file")
	}
	switch r.Mode {
	case "append":
		return patch.Append{File: r.File, After: r.After, Insert: r.Insert, Marker: r.Marker}, nil
	case "replace":
		return patch.Replace{File: r.File, Find: r.Find, Insert: r.Insert}, nil
	case "regex_replace":
		return patch.RegexReplace{File: r.File, Pattern: r.Pattern, Insert: r.Insert}, nil
	default:
		return nil, fmt.Errorf("unknown patch mode %q for %s", r.Mode, r.File)
	}
}

// ParseConfig decodes a scaffolding config. A typo in a patch record is a
// hard error, never a silent skip.
func ParseConfig(rdr io.Reader) (*Config, error) {
	var raw rawConfig
	dec := toml.NewDecoder(rdr)
	if err := dec.Decode(&raw); err != nil {
		if derr, ok := err.(*toml.DecodeError); ok {
			return nil, errors.New(derr.String())
		}
		return nil, err
	}

	cfg := &Config{Directories: raw.Directories}
	for _, rec := range raw.Patches {
		spec, err := rec.spec()
		if err != nil {
			return nil, err
		}
		cfg.Patches = append(cfg.Patches, Patch{Spec: spec, When: rec.When})
	}
	return cfg, nil
}

// LoadConfig reads the config at path, or the built-in default when path
// is empty.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(strings.NewReader(defaultConfig))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := ParseConfig(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
