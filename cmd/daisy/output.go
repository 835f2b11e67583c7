package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// printer writes styled CLI output. Colors are dropped automatically when
// the writer is not a terminal.
type printer struct {
	w       io.Writer
	title   lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	accent  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		header:  r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func (p *printer) Title(text string) {
	fmt.Fprintln(p.w, p.title.Render(text))
}

func (p *printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.success.Render("✓"), fmt.Sprintf(format, args...))
}

func (p *printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", fmt.Sprintf(format, args...))
}

// Table prints rows in aligned columns. Column widths are measured on the
// unstyled text so styling never breaks alignment.
func (p *printer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string, style func(int, string) string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := ""
			if i < len(cells)-1 {
				pad = strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2)
			}
			parts[i] = style(i, cell) + pad
		}
		fmt.Fprintln(p.w, strings.TrimRight(strings.Join(parts, ""), " "))
	}

	line(headers, func(_ int, s string) string { return p.header.Render(s) })
	for _, row := range rows {
		line(row, func(i int, s string) string {
			switch i {
			case 0:
				return p.accent.Render(s)
			case len(row) - 1:
				return p.muted.Render(s)
			}
			return s
		})
	}
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
