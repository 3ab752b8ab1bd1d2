// Package ui renders komp's terminal output and prompts.
package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
)

var (
	infoSymbol = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render("ℹ")
	okSymbol   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✔")
	warnSymbol = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("⚠")
	errSymbol  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✖")
	stepSymbol = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Render("➜")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	dimStyle = lipgloss.NewStyle().Faint(true)
)

// Info prefixes msg with the informational symbol
func Info(msg string) string { return infoSymbol + " " + msg }

// Ok prefixes msg with the success symbol
func Ok(msg string) string { return okSymbol + " " + msg }

// Warn prefixes msg with the warning symbol
func Warn(msg string) string { return warnSymbol + " " + msg }

// Err prefixes msg with the failure symbol
func Err(msg string) string { return errSymbol + " " + msg }

// Step prefixes msg with the progress symbol
func Step(msg string) string { return stepSymbol + " " + msg }

// Dim renders secondary text
func Dim(msg string) string {
	return dimStyle.Render(msg)
}

// Title renders a bold heading
func Title(msg string) string {
	return titleStyle.Render(msg)
}

// Box renders content inside a rounded border under a heading
func Box(title, content string) string {
	return titleStyle.Render(title) + "\n" + boxStyle.Render(strings.TrimSpace(content))
}

// CopyToClipboard places text on the system clipboard
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
