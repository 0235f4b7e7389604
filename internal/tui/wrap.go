package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// flowBlocks lays rendered blocks out left to right, starting a new row
// whenever the next block would overflow width. Blocks wider than width get
// a row of their own.
func flowBlocks(blocks []string, width, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	if width <= 0 {
		return joinRow(blocks, gap)
	}
	var rows []string
	line := make([]string, 0, len(blocks))
	lineWidth := 0
	for _, block := range blocks {
		blockWidth := lipgloss.Width(block)
		next := lineWidth + blockWidth
		if len(line) > 0 {
			next += gap
		}
		if next > width && len(line) > 0 {
			rows = append(rows, joinRow(line, gap))
			line = line[:0]
			lineWidth = 0
			next = blockWidth
		}
		line = append(line, block)
		lineWidth = next
	}
	rows = append(rows, joinRow(line, gap))
	return strings.Join(rows, "\n")
}

func joinRow(blocks []string, gap int) string {
	if gap <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, block := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// progressBar renders percent (0-100) as filled and empty cells.
func progressBar(percent float64, width int) (filled, empty string) {
	if width <= 0 {
		return "", ""
	}
	n := int(math.Round(percent / 100 * float64(width)))
	n = max(0, min(n, width))
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}
