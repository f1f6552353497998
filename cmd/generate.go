// cubekit generate
package cmd

import (
	"github.com/cubekit-dev/cubekit/internal/cubemx"
	"github.com/cubekit-dev/cubekit/internal/msg"
	"github.com/spf13/cobra"
)

// keepToolchain leaves the toolchain configured in the ioc file untouched.
const keepToolchain = "keep"

var flagToolchain EnumValue = NewEnumValue(keepToolchain, toolchainFlagValues())

func toolchainFlagValues() map[string]string {
	allowed := map[string]string{
		keepToolchain: "Keep the toolchain configured in the ioc file",
	}
	for value, display := range cubemx.Toolchains() {
		allowed[value] = "Switch the project to " + display
	}
	return allowed
}

// selectedToolchain maps the flag to the value the cubemx package expects,
// where the empty string means "don't switch".
func selectedToolchain() string {
	if flagToolchain.Value() == keepToolchain {
		return ""
	}
	return flagToolchain.Value()
}

func doGenerate(cmd *cobra.Command, args []string) {
	if err := cubemx.Generate(selectedToolchain()); err != nil {
		msg.Fatal("%v", err)
	}
	msg.Info("code generation finished")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run STM32CubeMX code generation for the ioc file in the current directory",
	Args:  cobra.NoArgs,
	Run:   doGenerate,
}

func init() {
	// cubekit generate subcommand
	rootCmd.AddCommand(generateCmd)
	addToolchainFlag(generateCmd)
}

func addToolchainFlag(cmd *cobra.Command) {
	cmd.Flags().VarP(&flagToolchain, "toolchain", "t", "Toolchain to switch the project to, one of "+flagToolchain.HelpString())
	cmd.RegisterFlagCompletionFunc("toolchain", flagToolchain.CompletionFunc())
}
