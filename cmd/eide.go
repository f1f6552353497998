// cubekit eide
package cmd

import (
	"os"
	"path/filepath"

	"github.com/cubekit-dev/cubekit/internal/eide"
	"github.com/cubekit-dev/cubekit/internal/makefile"
	"github.com/cubekit-dev/cubekit/internal/msg"
	"github.com/spf13/cobra"
)

var (
	flagMakefile string
	flagOutput   string
)

func doEide(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(flagMakefile)
	if err != nil {
		msg.Fatal("read %s: %v", flagMakefile, err)
	}
	cfg := makefile.Parse(string(data))

	fallback := "project"
	if cwd, err := os.Getwd(); err == nil {
		fallback = filepath.Base(cwd)
	}

	project := eide.Build(cfg, fallback)
	if err := project.Write(flagOutput); err != nil {
		msg.Fatal("write %s: %v", flagOutput, err)
	}
	msg.Info("generated %s", filepath.ToSlash(flagOutput))
}

var eideCmd = &cobra.Command{
	Use:   "eide",
	Short: "Generate an Embedded IDE project descriptor from the generated Makefile",
	Args:  cobra.NoArgs,
	Run:   doEide,
}

func init() {
	// cubekit eide subcommand
	rootCmd.AddCommand(eideCmd)
	eideCmd.Flags().StringVarP(&flagMakefile, "makefile", "m", "Makefile", "Makefile to extract the configuration from")
	eideCmd.Flags().StringVarP(&flagOutput, "output", "o", filepath.Join(".eide", "eide.json"), "Where to write the project descriptor")
}
