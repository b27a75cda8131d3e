package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mimicsh",
	Short: "UNIX-like shell emulator over an in-memory virtual filesystem",
	Long: `mimicsh loads a virtual filesystem from a JSON document and drops
you into a small emulated shell on top of it. Every command invocation
is recorded in an XML event log.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a JSON settings file; its values override flags")
}
