package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"FileScout/app"
	"FileScout/config"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Opens the interactive two-pane explorer.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			color.Red("❌ Error loading config: %v\n", err)
			cfg = config.Config{}
		}

		// A path argument overrides the configured start path
		if len(args) >= 1 {
			cfg.StartPath = args[0]
		}

		app.StartApp(cfg)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	// Running FileScout with no subcommand opens the explorer
	rootCmd.Run = browseCmd.Run
}
