package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/spf13/cobra"
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "Displays mounted volumes and their usage",
	Run: func(cmd *cobra.Command, args []string) {
		volumes()
	},
}

func volumes() {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	section := color.New(color.FgHiYellow, color.Bold).SprintFunc()
	label := color.New(color.FgGreen).SprintFunc()
	value := color.New(color.FgWhite).SprintFunc()
	usedPercent := color.New(color.FgRed, color.Bold).SprintFunc()
	freePercent := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Println(header("\n💾 Mounted Volumes"))
	fmt.Println(section("────────────────────────────"))

	partitions, err := disk.Partitions(false)
	if err != nil {
		color.Red("Error fetching partitions: %v\n", err)
		return
	}

	for _, p := range partitions {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			color.Yellow("  Skipping %s due to error: %v", p.Mountpoint, err)
			continue
		}

		fmt.Printf("\n%s %s (%s)\n", label("Mountpoint:"), value(p.Mountpoint), value(p.Fstype))
		fmt.Printf("  %-10s %s GB\n", label("Total:"), fmtSize(usage.Total))
		fmt.Printf("  %-10s %s GB\n", label("Free:"), fmtSize(usage.Free))
		fmt.Printf("  %-10s %s GB\n", label("Used:"), fmtSize(usage.Used))
		fmt.Printf("  %s %s\n", label("Used space Percent:"), usedPercent(fmt.Sprintf("%.2f%%", usage.UsedPercent)))
		fmt.Printf("  %s %s\n", label("Free space Percent:"), freePercent(fmt.Sprintf("%.2f%%", 100-usage.UsedPercent)))
	}
}

func fmtSize(size uint64) string {
	return fmt.Sprintf("%.2f", float64(size)/1e9)
}

func init() {
	rootCmd.AddCommand(volumesCmd)
}
