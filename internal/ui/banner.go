package ui

import (
	"strings"

	figure "github.com/common-nighthawk/go-figure"
)

// Banner renders text as ASCII art followed by a framed subtitle.
func Banner(text, subtitle string) string {
	art := figure.NewFigure(text, "standard", true).String()
	art = strings.TrimRight(art, "\n") + "\n"

	rule := strings.Repeat("=", 65)
	var b strings.Builder
	b.WriteString(Success.Sprint(art))
	b.WriteString(rule + "\n")
	b.WriteString("== " + subtitle + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}
