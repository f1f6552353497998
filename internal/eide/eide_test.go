package eide

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cubekit-dev/cubekit/internal/makefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoConfig() *makefile.Config {
	return &makefile.Config{
		Target:     "f407-demo",
		BuildDir:   "build",
		CSources:   []string{"Core/Src/main.c", "Core/Src/gpio.c", "Drivers/HAL/hal.c"},
		AsmSources: []string{"startup_stm32f407xx.s"},
		Includes:   []string{"Core/Inc", "Drivers/HAL/Inc"},
		Defines:    []string{"USE_HAL_DRIVER", "STM32F407xx"},
		Cflags:     []string{"-mcpu=cortex-m4", "-mfpu=fpv4-sp-d16", "-Wall"},
		Libs:       []string{"-lc", "-lm"},
		Ldscript:   "STM32F407VGTx_FLASH.ld",
	}
}

func TestBuild(t *testing.T) {
	p := Build(demoConfig(), "fallback")

	assert.Equal(t, "f407-demo", p.Name)
	assert.Equal(t, []string{"Core/Src", "Drivers/HAL"}, p.SrcDirs)

	require.Contains(t, p.Targets, "Debug")
	target := p.Targets["Debug"]
	assert.Equal(t, "Cortex-M4", target.CompileConfig.CPUType)
	assert.Equal(t, "single", target.CompileConfig.FloatingPointHw)
	assert.Equal(t, "STM32F407VGTx_FLASH.ld", target.CompileConfig.ScatterFilePath)
	assert.True(t, target.CompileConfig.UseCustomScatter)
	assert.Equal(t, []string{"Core/Inc", "Drivers/HAL/Inc"}, target.CustomDep.IncList)
	assert.Equal(t, []string{"USE_HAL_DRIVER", "STM32F407xx"}, target.CustomDep.DefineList)
	assert.Equal(t, []string{"-lc", "-lm"}, target.CustomDep.LibList)
}

func TestBuildVirtualFolders(t *testing.T) {
	p := Build(demoConfig(), "fallback")

	require.Len(t, p.VirtualFolder.Folders, 3)
	// the top-level startup file groups under "."
	assert.Equal(t, ".", p.VirtualFolder.Folders[0].Name)
	assert.Equal(t, []VirtualFile{{Path: "startup_stm32f407xx.s"}}, p.VirtualFolder.Folders[0].Files)
	assert.Equal(t, "Core/Src", p.VirtualFolder.Folders[1].Name)
	assert.Equal(t, []VirtualFile{
		{Path: "Core/Src/gpio.c"},
		{Path: "Core/Src/main.c"},
	}, p.VirtualFolder.Folders[1].Files)
	assert.Equal(t, "Drivers/HAL", p.VirtualFolder.Folders[2].Name)
}

func TestBuildFallbackName(t *testing.T) {
	cfg := demoConfig()
	cfg.Target = ""
	cfg.Ldscript = ""

	p := Build(cfg, "fallback")
	assert.Equal(t, "fallback", p.Name)
	assert.False(t, p.Targets["Debug"].CompileConfig.UseCustomScatter)
}

func TestFloatingPoint(t *testing.T) {
	assert.Equal(t, "none", floatingPoint([]string{"-mcpu=cortex-m0"}))
	assert.Equal(t, "single", floatingPoint([]string{"-mfpu=fpv4-sp-d16"}))
	assert.Equal(t, "single", floatingPoint([]string{"-mfpu=fpv5-sp-d16"}))
	assert.Equal(t, "double", floatingPoint([]string{"-mfpu=fpv5-d16"}))
}

func TestWrite(t *testing.T) {
	p := Build(demoConfig(), "fallback")
	out := filepath.Join(t.TempDir(), ".eide", "eide.json")
	require.NoError(t, p.Write(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded Project
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "f407-demo", decoded.Name)
	assert.Equal(t, p.SrcDirs, decoded.SrcDirs)
}
