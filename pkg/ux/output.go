// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the camelot CLI.
package ux

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Aleutian color palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // Bright teal - highlighted keys
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Primary teal - titles
	ColorTealDeep    = lipgloss.Color("#16858E") // Deep teal - borders
	ColorSlate       = lipgloss.Color("#2C4A54") // Slate - muted keys

	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Box       lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return style(Styles.Success).Render(string(i))
	case IconError:
		return style(Styles.Error).Render(string(i))
	default:
		return string(i)
	}
}

// style returns s, or an unstyled style when colors are off.
func style(s lipgloss.Style) lipgloss.Style {
	if !ShouldShowColors() {
		return lipgloss.NewStyle()
	}
	return s
}

// Title prints a styled title; nothing in machine mode
func Title(w io.Writer, text string) {
	if GetPersonality().Level == PersonalityMachine {
		return
	}
	fmt.Fprintln(w, style(Styles.Title).Render(text))
}

// Success prints a success message with checkmark
func Success(w io.Writer, text string) {
	switch GetPersonality().Level {
	case PersonalityMachine:
		fmt.Fprintf(w, "OK: %s\n", text)
	default:
		fmt.Fprintf(w, "%s %s\n", IconSuccess.Render(), text)
	}
}

// Error prints an error message
func Error(w io.Writer, text string) {
	switch GetPersonality().Level {
	case PersonalityMachine:
		fmt.Fprintf(w, "ERROR: %s\n", text)
	default:
		fmt.Fprintf(w, "%s %s\n", IconError.Render(), style(Styles.Error).Render(text))
	}
}

// Field prints a "label: value" line
func Field(w io.Writer, label string, value any) {
	switch GetPersonality().Level {
	case PersonalityMachine:
		fmt.Fprintf(w, "%s=%v\n", label, value)
	default:
		fmt.Fprintf(w, "%s %s\n", style(Styles.Muted).Render(label+":"), style(Styles.Bold).Render(fmt.Sprint(value)))
	}
}

// Box prints content in a rounded box under a title
func Box(w io.Writer, title, content string) {
	level := GetPersonality().Level
	if level == PersonalityMachine {
		fmt.Fprintln(w, content)
		return
	}
	if level == PersonalityMinimal {
		fmt.Fprintf(w, "%s\n%s\n", title, content)
		return
	}
	fmt.Fprintln(w, Styles.Box.Render(Styles.Title.Render(title)+"\n"+content))
}
