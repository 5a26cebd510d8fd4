package main

import (
	cli "FileScout/CLI"
	utils "FileScout/Utils"
	"fmt"

	"github.com/fatih/color"
)

func main() {
	timer := utils.StartTimer()

	// Fancy welcome message
	welcome := color.New(color.FgHiBlue, color.Bold).SprintFunc()
	fmt.Println(welcome("\n🧭 Welcome to FileScout, your terminal file explorer"))

	cli.Execute()

	elapsed := timer.Elapsed()
	color.New(color.FgHiMagenta).Printf("⏱️  Session time: %.3f s\n", elapsed)
}
