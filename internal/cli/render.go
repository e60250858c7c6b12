package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

const maxNameWidth = 60

func itemLines(items []model.Item, showIDs bool) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		box := t.Muted.Render(t.BoxUnchecked)
		name := ansi.Truncate(it.Name, maxNameWidth, "...")
		if it.IsPacked {
			box = t.Success.Render(t.BoxChecked)
			name = t.Packed.Render(name)
		}
		line := fmt.Sprintf("%s %s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), box, ui.Badge(it.Category), name)
		if showIDs {
			line += "  " + t.Muted.Render(it.ID)
		}
		out = append(out, line)
	}
	return out
}

func renderTemplate(w io.Writer, name string, filter model.Filter, items []model.Item, showIDs bool) {
	t := ui.Current()
	packed, pending := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %s",
		t.Title.Render(name),
		t.Success.Render(t.SymPacked), packed,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("filter"), filter.String(),
	)
	lines := []string{header, t.Muted.Render(ui.ProgressBar(packed, packed+pending, 28)), ""}
	lines = append(lines, itemLines(items, showIDs)...)
	ui.Panel(w, lines)
}
