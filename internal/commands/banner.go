package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ffd859")).Padding(0, 2)
	bannerTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd859")).Bold(true)
	bannerSubStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// printBanner writes the CLI banner.
func printBanner(w io.Writer) {
	body := lipgloss.JoinVertical(lipgloss.Center,
		bannerTitleStyle.Render("🍍 Pinia CLI"),
		bannerSubStyle.Render("store generator for Vue 3 and Nuxt 3"),
	)
	fmt.Fprintln(w, bannerStyle.Render(body))
}
