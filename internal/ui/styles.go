package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/ankimd/internal/config"
)

// StyleManager encapsulates all TUI styles
type StyleManager struct {
	Border    lipgloss.Style
	Title     lipgloss.Style
	Highlight lipgloss.Style // Selected list row and edit cursor
	Dim       lipgloss.Style
	Preview   lipgloss.Style // Front/back/tags panes
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Preview:   lipgloss.NewStyle().Align(lipgloss.Center),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	borderColor := lipgloss.Color(config.GetColorBorder())
	highlightBg := lipgloss.Color(config.GetColorHighlight())

	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(config.GetColorTitle()))
	s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(highlightBg)
	s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color(config.GetColorDim()))
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
