package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every section of the text report.
var (
	colorHeader   = lipgloss.Color("#8B5CF6") // violet
	colorKind     = lipgloss.Color("#06B6D4") // cyan
	colorSyntax   = lipgloss.Color("#EF4444") // red
	colorSemantic = lipgloss.Color("#F59E0B") // amber
	colorOK       = lipgloss.Color("#10B981") // emerald
	colorMuted    = lipgloss.Color("#6B7280") // gray
)

type styles struct {
	header   lipgloss.Style
	kind     lipgloss.Style
	syntax   lipgloss.Style
	semantic lipgloss.Style
	ok       lipgloss.Style
	muted    lipgloss.Style
}

// newStyles builds styles for w. The renderer drops colors itself when w
// is not a terminal; color=false drops them unconditionally.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		header:   r.NewStyle().Foreground(colorHeader).Bold(true),
		kind:     r.NewStyle().Foreground(colorKind),
		syntax:   r.NewStyle().Foreground(colorSyntax).Bold(true),
		semantic: r.NewStyle().Foreground(colorSemantic).Bold(true),
		ok:       r.NewStyle().Foreground(colorOK),
		muted:    r.NewStyle().Foreground(colorMuted),
	}
}
