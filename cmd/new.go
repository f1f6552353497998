// cubekit new [path]
package cmd

import (
	"os"
	"path/filepath"

	"github.com/cubekit-dev/cubekit/internal/cubemx"
	"github.com/cubekit-dev/cubekit/internal/msg"
	"github.com/cubekit-dev/cubekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var flagIoc string

func doNew(cmd *cobra.Command, args []string) {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		msg.Fatal("%v", err)
	}
	ioc, err := filepath.Abs(flagIoc)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if _, err := os.Stat(ioc); err != nil {
		msg.Fatal("ioc file %s: %v", flagIoc, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		msg.Fatal("mkdir %s: %v", dir, err)
	}

	name := filepath.Base(dir)
	if err := cubemx.CreateProject(name, dir, ioc, selectedToolchain()); err != nil {
		msg.Fatal("%v", err)
	}

	// scaffold treats everything as relative to the working directory
	if err := os.Chdir(dir); err != nil {
		msg.Fatal("%v", err)
	}
	cfg, err := scaffold.LoadConfig(flagConfig)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if err := scaffold.Run(cfg, false); err != nil {
		msg.Fatal("%v", err)
	}
	msg.Info("created project %s", name)
}

var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Create a CubeMX project from an ioc file and scaffold it",
	Args:  cobra.ExactArgs(1),
	Run:   doNew,
}

func init() {
	// cubekit new subcommand
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&flagIoc, "ioc", "i", "", "CubeMX ioc file to import")
	newCmd.MarkFlagRequired("ioc")
	newCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Scaffolding config file (default: built-in)")
	addToolchainFlag(newCmd)
}
