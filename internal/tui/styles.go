package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(purple).
			MarginBottom(1)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	// Package names in listings
	PackageStyle = lipgloss.NewStyle().
			Foreground(orange).
			Bold(true)

	// Dependency names in listings
	DependencyStyle = lipgloss.NewStyle().
			Foreground(blue)
)
