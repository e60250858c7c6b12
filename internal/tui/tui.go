// Package tui is the interactive packing-list editor.
package tui

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/session"
	"github.com/idilsaglam/packlist/internal/templates"
	"github.com/idilsaglam/packlist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) Title() string       { return i.Name }
func (i listItem) Description() string { return string(i.Category) }
func (i listItem) FilterValue() string { return i.Name }

// single-line rows: "> ☑ [Clothing] Socks"
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	name := it.Name
	if it.IsPacked {
		box = t.Success.Render(t.BoxChecked)
		name = t.Packed.Render(name)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, ui.Badge(it.Category), name)
}

type mode int

const (
	browsing mode = iota
	adding
	creating
	confirming
)

// pending is what a confirmation prompt will do on "y".
type pending struct {
	prompt   string
	switchTo string
	quit     bool
}

type keyMap struct {
	Toggle, Add, Delete, Category, Filter, Save, Switch, New, Quit key.Binding
}

var keys = keyMap{
	Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pack")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
	Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Switch:   key.NewBinding(key.WithKeys("t", "tab"), key.WithHelp("t", "next template")),
	New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new template")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

type Model struct {
	store *templates.Store
	sess  *session.Session

	list list.Model
	ti   textinput.Model
	mode mode

	confirm pending
	status  string
	failed  bool

	width, height int
}

// New builds the editor over an existing session. If nothing is selected
// yet, the first template is opened.
func New(st *templates.Store, sess *session.Session) Model {
	var selErr error
	if _, ok := sess.Selected(); !ok {
		if names := st.TemplateNames(); len(names) > 0 {
			selErr = sess.SelectTemplate(names[0])
		}
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	extra := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete, keys.Category, keys.Filter, keys.Save, keys.Switch, keys.New}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{store: st, sess: sess, list: l, ti: ti, width: 80, height: 24}
	m.refresh()
	if selErr != nil {
		m.setStatus("", selErr)
	}
	return m
}

// Run starts the editor in the alternate screen.
func Run(st *templates.Store, sess *session.Session) error {
	_, err := tea.NewProgram(New(st, sess), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) refresh() {
	idx := m.list.Index()
	var li []list.Item
	for it := range m.sess.FilteredItems() {
		li = append(li, listItem{it})
	}
	m.list.SetItems(li)
	if idx >= len(li) {
		idx = len(li) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = m.header()
}

func (m Model) header() string {
	t := ui.Current()
	name, ok := m.sess.Selected()
	if !ok {
		name = "(no template)"
	}
	if m.sess.Dirty() {
		name += "*"
	}
	packed, pending := model.Stats(m.sess.Items())
	return fmt.Sprintf("%s   %s %d  %s %d   filter %s  new %s",
		t.Title.Render(name),
		t.Success.Render(t.SymPacked), packed,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render(m.sess.Filter().String()),
		ui.Badge(m.sess.ActiveCategory()),
	)
}

func (m *Model) setStatus(msg string, err error) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = msg, false
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.Item, ok
}

// nextTemplate is the name after the selected one, wrapping around.
func (m Model) nextTemplate() (string, bool) {
	names := m.store.TemplateNames()
	if len(names) == 0 {
		return "", false
	}
	cur, _ := m.sess.Selected()
	i := slices.Index(names, cur)
	return names[(i+1)%len(names)], true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case adding, creating:
		return m.updateInput(msg)
	case confirming:
		return m.updateConfirm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, keys.Quit):
		if m.sess.Dirty() {
			m.ask(pending{prompt: "Quit without saving?", quit: true})
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(km, keys.Toggle):
		if it, ok := m.selected(); ok {
			m.sess.ToggleItem(it.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(km, keys.Delete):
		if it, ok := m.selected(); ok {
			m.sess.DeleteItem(it.ID)
			m.refresh()
			m.setStatus("removed "+it.Name, nil)
		}
		return m, nil

	case key.Matches(km, keys.Category):
		_ = m.sess.SetActiveCategory(m.sess.ActiveCategory().Next())
		m.refresh()
		return m, nil

	case key.Matches(km, keys.Filter):
		m.sess.SetFilter(m.sess.Filter().Next())
		m.list.Select(0)
		m.refresh()
		return m, nil

	case key.Matches(km, keys.Save):
		name, _ := m.sess.Selected()
		m.setStatus("saved "+name, m.sess.Commit())
		m.refresh()
		return m, nil

	case key.Matches(km, keys.Switch):
		next, ok := m.nextTemplate()
		if !ok {
			return m, nil
		}
		if m.sess.Dirty() {
			m.ask(pending{prompt: fmt.Sprintf("Discard unsaved changes and open %q?", next), switchTo: next})
			return m, nil
		}
		m.open(next)
		return m, nil

	case key.Matches(km, keys.Add):
		cmd := m.startInput(adding, "New "+string(m.sess.ActiveCategory())+" item...")
		return m, cmd

	case key.Matches(km, keys.New):
		cmd := m.startInput(creating, "New template name...")
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) open(name string) {
	m.setStatus("opened "+name, m.sess.SelectTemplate(name))
	m.list.Select(0)
	m.refresh()
}

func (m *Model) ask(p pending) {
	m.confirm = p
	m.mode = confirming
}

func (m *Model) startInput(md mode, placeholder string) tea.Cmd {
	m.mode = md
	m.status = ""
	m.ti.SetValue("")
	m.ti.Placeholder = placeholder
	m.resize()
	return m.ti.Focus()
}

func (m *Model) stopInput() {
	m.mode = browsing
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEsc:
			m.stopInput()
			return m, nil
		case tea.KeyEnter:
			value := strings.TrimSpace(m.ti.Value())
			if m.mode == adding {
				it, err := m.sess.AddActiveItem(value)
				if err != nil {
					// stay in the input so the user can retype
					m.setStatus("", err)
					return m, nil
				}
				m.setStatus("added "+it.Name, nil)
				m.stopInput()
				m.refresh()
				return m, nil
			}
			if err := m.store.CreateTemplate(value); err != nil {
				m.setStatus("", err)
				return m, nil
			}
			m.stopInput()
			if m.sess.Dirty() {
				m.setStatus("created "+value, nil)
				m.ask(pending{prompt: fmt.Sprintf("Discard unsaved changes and open %q?", value), switchTo: value})
				return m, nil
			}
			m.open(value)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(km.String()) {
	case "y":
		p := m.confirm
		m.mode, m.confirm = browsing, pending{}
		if p.quit {
			return m, tea.Quit
		}
		m.open(p.switchTo)
	case "n", "esc":
		m.mode, m.confirm = browsing, pending{}
	}
	return m, nil
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != browsing {
		h -= 3
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	t := ui.Current()
	content := m.list.View()

	switch m.mode {
	case adding, creating, confirming:
		title := "Add item"
		body := m.ti.View()
		if m.mode == creating {
			title = "New template"
		}
		if m.mode == confirming {
			title = m.confirm.prompt
			body = t.Muted.Render("y / n")
		}
		if m.failed && m.status != "" {
			title += " - " + t.Error.Render(m.status)
		}
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+body)
	default:
		if m.status != "" {
			st := t.Muted
			if m.failed {
				st = t.Error
			}
			content += "\n" + st.Render(m.status)
		}
	}
	return ui.PanelString(content)
}
