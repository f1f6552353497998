package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValueSet(t *testing.T) {
	e := NewEnumValue("b", map[string]string{"a": "first", "b": "second", "c": ""})

	require.NoError(t, e.Set("a"))
	assert.Equal(t, "a", e.Value())

	err := e.Set("nope")
	require.Error(t, err)
	assert.Equal(t, "must be one of: a, b, c", err.Error())
	assert.Equal(t, "a", e.Value())
}

func TestEnumValueSortedHelp(t *testing.T) {
	e := NewEnumValue("z", map[string]string{"z": "", "m": "", "a": ""})
	assert.Equal(t, "[a, m, z]", e.HelpString())
}

func TestToolchainFlagCoversCubemx(t *testing.T) {
	allowed := toolchainFlagValues()
	assert.Contains(t, allowed, keepToolchain)
	assert.Contains(t, allowed, "makefile")
	assert.Contains(t, allowed, "cubeide")
}
