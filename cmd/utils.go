package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// EnumValue is a cobra flag value restricted to a fixed set of strings,
// with per-value help text surfaced through shell completion. Keys are
// kept in sorted order so help and completion output are stable.
type EnumValue struct {
	value   string
	keys    []string
	allowed map[string]string // value -> help text
}

func NewEnumValue(defaultVal string, allowed map[string]string) EnumValue {
	if _, ok := allowed[defaultVal]; !ok {
		panic(fmt.Sprintf("default value %q not in allowed set", defaultVal))
	}
	return EnumValue{
		value:   defaultVal,
		keys:    slices.Sorted(maps.Keys(allowed)),
		allowed: allowed,
	}
}

func (e *EnumValue) String() string     { return e.value }
func (e *EnumValue) HelpString() string { return "[" + strings.Join(e.keys, ", ") + "]" }
func (e *EnumValue) Type() string       { return "enum" }
func (e *EnumValue) Value() string      { return e.value }

func (e *EnumValue) Set(v string) error {
	if _, ok := e.allowed[v]; !ok {
		return fmt.Errorf("must be one of: %s", strings.Join(e.keys, ", "))
	}
	e.value = v
	return nil
}

func (e *EnumValue) CompletionFunc() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		items := make([]string, 0, len(e.keys))
		for _, k := range e.keys {
			if help := e.allowed[k]; help != "" {
				items = append(items, k+"\t"+help)
			} else {
				items = append(items, k)
			}
		}
		return items, cobra.ShellCompDirectiveNoFileComp
	}
}
