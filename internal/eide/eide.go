// Package eide emits a project descriptor for the VSCode Embedded IDE
// extension, filled from the configuration extracted out of a
// CubeMX-generated Makefile.
package eide

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cubekit-dev/cubekit/internal/makefile"
)

//
// structures for .eide/eide.json
//

type Project struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Mode          string            `json:"mode"`
	SrcDirs       []string          `json:"srcDirs"`
	VirtualFolder VirtualFolder     `json:"virtualFolder"`
	Targets       map[string]Target `json:"targets"`
	Version       string            `json:"version"`
}

type VirtualFolder struct {
	Name    string          `json:"name"`
	Files   []VirtualFile   `json:"files"`
	Folders []VirtualFolder `json:"folders"`
}

type VirtualFile struct {
	Path string `json:"path"`
}

type Target struct {
	Toolchain     string        `json:"toolchain"`
	ExcludeList   []string      `json:"excludeList"`
	CompileConfig CompileConfig `json:"compileConfig"`
	CustomDep     CustomDep     `json:"custom_dep"`
}

type CompileConfig struct {
	CPUType          string `json:"cpuType"`
	FloatingPointHw  string `json:"floatingPointHardware"`
	ScatterFilePath  string `json:"scatterFilePath"`
	UseCustomScatter bool   `json:"useCustomScatterFile"`
	Options          string `json:"options"`
}

type CustomDep struct {
	IncList    []string `json:"incList"`
	DefineList []string `json:"defineList"`
	LibList    []string `json:"libList"`
}

// Build fills a Project from an extracted Makefile configuration. name is
// the fallback project name when the Makefile has no TARGET. The output is
// deterministic for a given input.
func Build(cfg *makefile.Config, name string) *Project {
	if cfg.Target != "" {
		name = cfg.Target
	}

	sources := make([]string, 0, len(cfg.CSources)+len(cfg.AsmSources))
	sources = append(sources, cfg.CSources...)
	sources = append(sources, cfg.AsmSources...)

	p := &Project{
		Name:    name,
		Type:    "ARM",
		Mode:    "Debug",
		SrcDirs: sourceDirs(sources),
		VirtualFolder: VirtualFolder{
			Name:    "<virtual_root>",
			Folders: virtualFolders(sources),
		},
		Targets: map[string]Target{
			"Debug": {
				Toolchain: "GCC",
				CompileConfig: CompileConfig{
					CPUType:          cpuType(cfg.Cflags),
					FloatingPointHw:  floatingPoint(cfg.Cflags),
					ScatterFilePath:  cfg.Ldscript,
					UseCustomScatter: cfg.Ldscript != "",
					Options:          "null",
				},
				CustomDep: CustomDep{
					IncList:    cfg.Includes,
					DefineList: cfg.Defines,
					LibList:    cfg.Libs,
				},
			},
		},
		Version: "3.5",
	}
	return p
}

// sourceDirs returns the unique parent directories of the given source
// paths, in sorted order.
func sourceDirs(sources []string) []string {
	set := make(map[string]bool)
	for _, src := range sources {
		dir := path.Dir(filepath.ToSlash(src))
		if dir != "." {
			set[dir] = true
		}
	}

	dirs := make([]string, 0, len(set))
	for dir := range set {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// virtualFolders groups source files into one virtual folder per parent
// directory, both levels sorted.
func virtualFolders(sources []string) []VirtualFolder {
	byDir := make(map[string][]VirtualFile)
	for _, src := range sources {
		src = filepath.ToSlash(src)
		byDir[path.Dir(src)] = append(byDir[path.Dir(src)], VirtualFile{Path: src})
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	folders := make([]VirtualFolder, 0, len(dirs))
	for _, dir := range dirs {
		files := byDir[dir]
		sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
		folders = append(folders, VirtualFolder{Name: dir, Files: files})
	}
	return folders
}

func cpuType(cflags []string) string {
	for _, f := range cflags {
		if v, ok := strings.CutPrefix(f, "-mcpu="); ok {
			if rest, ok := strings.CutPrefix(v, "cortex-m"); ok {
				return "Cortex-M" + rest
			}
			return v
		}
	}
	return ""
}

func floatingPoint(cflags []string) string {
	for _, f := range cflags {
		if v, ok := strings.CutPrefix(f, "-mfpu="); ok {
			// fpv5-d16 is double precision, fpv4-sp-d16 / fpv5-sp-d16 are not
			if strings.HasPrefix(v, "fpv5") && !strings.Contains(v, "-sp-") {
				return "double"
			}
			return "single"
		}
	}
	return "none"
}

// Write marshals the project to path, creating parent directories.
func (p *Project) Write(outPath string) error {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(outPath, data, 0o644)
}
