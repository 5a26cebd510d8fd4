package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"FileScout/Reader"
	"FileScout/Utils"
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "Prints one directory listing, folders first, without starting the explorer.",
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) >= 1 {
			path = args[0]
		}
		list(path)
	},
}

func list(path string) {
	label := color.New(color.FgGreen).SprintFunc()
	value := color.New(color.FgHiWhite).SprintFunc()

	fmt.Printf("\n%s %s\n\n", label("📂 Listing:"), value(path))

	snapshot, err := Reader.NewDirReader().List(path)
	if err != nil {
		if errors.Is(err, Reader.ErrUnreadable) {
			color.Red("❌ Cannot read directory: %v\n", err)
		} else {
			color.Red("❌ %v\n", err)
		}
		os.Exit(1)
	}

	nameColor := color.New(color.FgHiCyan).SprintFunc()
	dirColor := color.New(color.FgGreen, color.Bold).SprintFunc()
	sizeColor := color.New(color.FgHiWhite).SprintFunc()

	for _, entry := range snapshot {
		icon := Utils.GetFileIcon(entry.Name, entry.IsDir)
		name := nameColor(entry.Name)
		size := ""
		if entry.IsDir {
			name = dirColor(entry.Name)
		} else {
			size = Utils.FormatSize(entry.Size)
		}
		fmt.Printf("%s %-40s %-10s %9s  %s\n",
			icon, name, entry.Kind, sizeColor(size),
			Utils.FormatTime(entry.ModTime, ""))
	}

	fmt.Printf("\n%s %d\n", label("Total entries:"), len(snapshot))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
