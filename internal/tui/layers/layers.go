// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenteredPosition(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CenteredPosition returns the top-left corner that centers a box on screen,
// never negative
func CenteredPosition(width, height, screenWidth, screenHeight int) (int, int) {
	x := max((screenWidth-width)/2, 0)
	y := max((screenHeight-height)/2, 0)
	return x, y
}

// CreateAnchoredLayer creates a layer whose top-left corner sits at (x, y),
// shifted left and up as needed to stay on screen.
//
// Returns nil if content is empty.
func CreateAnchoredLayer(content string, x, y, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y = AnchoredPosition(lipgloss.Width(content), lipgloss.Height(content), x, y, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// AnchoredPosition clamps a box anchored at (x, y) to the screen
func AnchoredPosition(width, height, x, y, screenWidth, screenHeight int) (int, int) {
	x = max(min(x, screenWidth-width), 0)
	y = max(min(y, screenHeight-height), 0)
	return x, y
}

// ModalWidth returns the width used for form and detail modals
func ModalWidth(screenWidth int) int {
	width := screenWidth * ModalWidthNumerator / ModalWidthDenominator
	width = min(max(width, ModalMinWidth), ModalMaxWidth)
	return min(width, screenWidth)
}
