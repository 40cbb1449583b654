package ui

import "github.com/charmbracelet/lipgloss"

// ErrorStyle renders linkify's own error messages on stderr. The data
// stream on stdout is never styled by the tool itself.
var ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
