package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// truncate shortens value to limit display cells, adding an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	return ansi.Truncate(value, limit, ellipsis)
}

// truncateMiddle shortens value by dropping characters from the middle so
// both the host and the file name of a poster reference stay readable.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}

	keep := limit - 1
	suffix := keep / 2
	if slash := strings.LastIndex(value, "/"); slash >= 0 {
		// Keep the whole file name when it fits in two thirds of the space.
		if name := []rune(value[slash:]); len(name) < keep*2/3 {
			suffix = len(name)
		}
	}
	prefix := keep - suffix
	return string(runes[:prefix]) + ellipsis + string(runes[len(runes)-suffix:])
}

// wrapLines word-wraps text to width cells, keeping paragraph breaks.
func wrapLines(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
