package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-ilp/ilp"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// hostReport describes the running host and the profile in use.
func hostReport(info ilp.HostInfo, active *ilp.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Platform:       %s/%s\n", info.GOOS, info.GOARCH)
	features := "(none reported)"
	if len(info.Features) > 0 {
		features = strings.Join(info.Features, " ")
	}
	fmt.Fprintf(&sb, "CPU features:   %s\n", features)
	fmt.Fprintf(&sb, "Detected:       %s\n", info.Profile)
	fmt.Fprintf(&sb, "Active profile: %s\n", active.Name)
	return sb.String()
}

// profileHeading renders "apple_m1" as "Apple M1".
func profileHeading(p *ilp.Profile) string {
	title := titleCaser.String(strings.ReplaceAll(p.Name, "_", " "))
	return lipgloss.NewStyle().Bold(true).Render(title) + " - " + p.Description
}

// profileTable renders the unroll factors of p, one row per category and
// one column per (width, int/float) pair. Cells without an entry show the
// fallback value followed by '*'.
func profileTable(p *ilp.Profile, categories []ilp.Category) string {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	headerStyle := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if col > 0 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		})

	headers := []string{"Category"}
	for _, w := range ilp.Widths() {
		headers = append(headers, fmt.Sprintf("int%d", 8*w), fmt.Sprintf("float%d", 8*w))
	}
	table.Headers(headers...)

	for _, c := range categories {
		row := []string{titleCaser.String(c.String())}
		for _, w := range ilp.Widths() {
			for _, isFloat := range []bool{false, true} {
				row = append(row, cellText(p, c, w, isFloat))
			}
		}
		table.Row(row...)
	}
	return table.String()
}

func cellText(p *ilp.Profile, c ilp.Category, width int, isFloat bool) string {
	if k, ok := p.Lookup(c, width, isFloat); ok {
		return strconv.Itoa(k)
	}
	return strconv.Itoa(ilp.SelectK(c, width, isFloat, p)) + "*"
}
