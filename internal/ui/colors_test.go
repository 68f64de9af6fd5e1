package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorValues(t *testing.T) {
	tests := []struct {
		name  string
		color lipgloss.Color
	}{
		{"ColorSuccess", ColorSuccess},
		{"ColorError", ColorError},
		{"ColorWarning", ColorWarning},
		{"ColorInfo", ColorInfo},
		{"ColorPrimary", ColorPrimary},
		{"ColorSecondary", ColorSecondary},
		{"ColorMuted", ColorMuted},
		{"ColorNeonPink", ColorNeonPink},
		{"ColorNeonPurple", ColorNeonPurple},
		{"ColorNeonCyan", ColorNeonCyan},
		{"ColorGlassBorder", ColorGlassBorder},
		{"ColorSurfaceBg", ColorSurfaceBg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex := string(tt.color)
			assert.True(t, strings.HasPrefix(hex, "#"), "%s should be a hex color", tt.name)
			assert.Len(t, hex, 7)
		})
	}
}

func TestGradientColors(t *testing.T) {
	assert.Len(t, GradientColors, 4)
	assert.Equal(t, ColorNeonPink, GradientColors[0])
}

func TestDisableColors(t *testing.T) {
	assert.NotPanics(t, func() {
		DisableColors()
	})

	rendered := SuccessStyle().Render("test")
	assert.Equal(t, "test", rendered, "monochrome output should be plain text")
}

func TestStylesAreFunctional(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Success", SuccessStyle()},
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Info", InfoStyle()},
		{"Muted", MutedStyle()},
		{"Accent", AccentStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style.Render("test text"), "test text")
		})
	}
}
