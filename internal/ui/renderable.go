// Package ui holds the minimal contracts shared by every renderable piece of the portfolio.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}
