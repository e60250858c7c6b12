package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/packlist/internal/model"
)

// Theme bundles styles, symbols and the panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Packed                              lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymPacked, SymPending    string

	Border      lipgloss.Border
	BorderColor lipgloss.Color

	Categories map[model.Category]lipgloss.Style
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.Border = lipgloss.RoundedBorder()
		t.BorderColor = lipgloss.Color("13")
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain.Reverse(true), Packed: plain.Strikethrough(true),
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymPacked: "x", SymPending: "-",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color(""),
			Categories: map[model.Category]lipgloss.Style{
				model.Valuables: plain, model.Clothing: plain, model.Gadget: plain, model.Other: plain,
			},
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Packed:   lipgloss.NewStyle().Faint(true).Strikethrough(true),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymPacked: "✔", SymPending: "•",

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		Categories: map[model.Category]lipgloss.Style{
			model.Valuables: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			model.Clothing:  lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
			model.Gadget:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			model.Other:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// Badge renders "[Category]" in the category's color.
func Badge(c model.Category) string {
	st, ok := current.Categories[c]
	if !ok {
		st = current.Muted
	}
	return st.Render("[" + string(c) + "]")
}
