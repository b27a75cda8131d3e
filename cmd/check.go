package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mimicsh/mimicsh/core/vfs"
)

// checkCmd validates a VFS document without starting the emulator.
var checkCmd = &cobra.Command{
	Use:   "check VFS_FILE",
	Short: "Validate a VFS document and print tree statistics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		data, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		doc, err := vfs.ParseDocument(data)
		if err != nil {
			return err
		}
		tree, err := vfs.Build(doc)
		if err != nil {
			return err
		}

		stats := vfs.Collect(tree.Root)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s: ok\n", args[0])
		fmt.Fprintf(w, "label: %s\n", tree.Label)
		fmt.Fprintf(w, "dirs: %d\n", stats.Dirs)
		fmt.Fprintf(w, "files: %d\n", stats.Files)
		fmt.Fprintf(w, "bytes: %d\n", stats.Bytes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
