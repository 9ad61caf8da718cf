// Package tui holds the terminal presentation helpers shared by the CLI:
// colour styles for stderr status lines and interactive-terminal detection.
package tui
