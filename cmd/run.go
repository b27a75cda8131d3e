package cmd

import (
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mimicsh/mimicsh/core"
	"github.com/mimicsh/mimicsh/core/audit"
	"github.com/mimicsh/mimicsh/core/config"
	"github.com/mimicsh/mimicsh/core/session"
)

var flagSettings config.Settings

// runCmd starts the interactive emulator.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the emulator prompt.",
	Long: `Load the VFS, replay the start script if one is configured, then
read commands interactively until exit or end of input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		hostFS := afero.NewOsFs()
		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			ReportTimestamp: false,
		})

		settings := flagSettings
		if cfgPath != "" {
			fileSettings, err := config.Load(hostFS, cfgPath)
			if err != nil {
				logger.Warn("config file could not be read, continuing with CLI values",
					"path", cfgPath, "err", err)
			} else {
				settings = config.Merge(settings, *fileSettings)
			}
		}

		username := actingUser()
		logger.Info("emulator starting",
			"vfs", settings.VFS,
			"log", settings.Log,
			"start", settings.Start,
			"user", username)

		tree := core.LoadTree(hostFS, settings.VFS, logger)

		var recorder audit.Recorder = audit.NopRecorder{}
		if settings.Log != "" {
			xmlRecorder := audit.NewXMLRecorder(hostFS, settings.Log)
			if err := xmlRecorder.Ensure(); err != nil {
				logger.Warn("could not prepare log file", "path", settings.Log, "err", err)
			}
			recorder = xmlRecorder
		}

		sess := session.New(tree, username, recorder)
		emu := core.New(sess, core.Options{
			HostFS: hostFS,
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: logger,
		})
		return emu.Run(settings.Start)
	},
}

// actingUser resolves the identity echoed by whoami and stamped on
// audit events.
func actingUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

func init() {
	runCmd.Flags().StringVar(&flagSettings.VFS, "vfs", "", "path to the VFS JSON document")
	runCmd.Flags().StringVar(&flagSettings.Log, "log", "", "path to the XML event log")
	runCmd.Flags().StringVar(&flagSettings.Start, "start", "", "path to a start script")
	rootCmd.AddCommand(runCmd)
}
