package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"minpairs/internal/generator"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")) // green
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")) // red
	seqStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")) // yellow
)

// printRun writes one run's pairs to stdout.
func printRun(res generator.RunResult) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Run %s: %d pairs", res.RunID, len(res.Pairs))))
	for i, p := range res.Pairs {
		fmt.Printf("\nPair %d:\n", i+1)
		fmt.Printf("%s %s\n", goodStyle.Render("Good:"), p.Good)
		fmt.Printf("%s  %s\n", badStyle.Render("Bad:"), p.Bad)
		fmt.Println(seqStyle.Render(fmt.Sprintf("Good Sequence: %s", strings.Join(p.GoodSeq, " "))))
		fmt.Println(seqStyle.Render(fmt.Sprintf("Bad Sequence:  %s", strings.Join(p.BadSeq, " "))))
		if p.Degenerate {
			fmt.Println(warnStyle.Render("(degenerate: no verb root pair available)"))
		}
	}
}
