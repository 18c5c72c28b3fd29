package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Lipgloss degrades colors on its own when the output is not a terminal.
var (
	styleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleRed    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleGreen  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// paint applies style unless colors were turned off with --color=false.
func paint(style lipgloss.Style, text string) string {
	if k.Exists("color") && !k.Bool("color") {
		return text
	}
	return style.Render(text)
}

// say prints to the command's output unless --quiet is set.
func say(cmd *cobra.Command, format string, args ...interface{}) {
	if quiet() {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
