// cubekit, cubekit init
package cmd

import (
	"fmt"
	"os"

	"github.com/cubekit-dev/cubekit/internal/msg"
	"github.com/cubekit-dev/cubekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagForce  bool
)

func doScaffold(cmd *cobra.Command, args []string) {
	cfg, err := scaffold.LoadConfig(flagConfig)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if err := scaffold.Run(cfg, flagForce); err != nil {
		msg.Fatal("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubekit",
	Short: "STM32 project scaffolding",
	Long:  `Bootstraps a UserCode tree next to STM32CubeMX output and keeps the generated build files patched to include it`,
	Args:  cobra.NoArgs,
	Run:   doScaffold,
}

// cubekit init subcommand, same as the bare invocation
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold the project in the current directory",
	Args:  cobra.NoArgs,
	Run:   doScaffold,
}

func init() {
	addScaffoldFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	addScaffoldFlags(initCmd)
}

func addScaffoldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Scaffolding config file (default: built-in)")
	cmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite existing template files")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
