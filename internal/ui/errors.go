package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to at most maxErrorLines
// lines of the given width, truncating with "..." when it overflows.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	lineWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if lineWidth < 10 {
		lineWidth = 10
	}

	words := strings.Fields(message)
	var lines []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) >= maxErrorLines {
				break
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	} else if len(lines) == maxErrorLines && current.Len() > 0 {
		// Ran out of lines with words left over.
		last := lines[maxErrorLines-1]
		runes := []rune(last)
		keep := lineWidth - utf8.RuneCountInString(truncationMark)
		if len(runes) > keep && keep > 0 {
			last = string(runes[:keep])
		}
		lines[maxErrorLines-1] = last + truncationMark
	}

	if len(lines) == 0 {
		return errorPrefix + message
	}
	return errorPrefix + strings.Join(lines, "\n")
}
