package tui

import (
	"context"

	"docket-cli/internal/logger"
	"docket-cli/internal/model"
	"docket-cli/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	ctx     context.Context
	journal Recorder
	log     logger.Logger

	// state is the single source of truth; tree is always view.Project(state).
	state model.State
	tree  view.Node

	width  int
	height int

	entries list.Model
	title   textinput.Model
	details textarea.Model
	focus   overlayFocus

	keys keyMap
	help help.Model
}

func newAppModel(ctx context.Context, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	m := appModel{
		ctx:     ctx,
		journal: opts.Journal,
		log:     log,
		state:   opts.State,
		tree:    view.Project(opts.State),
		keys:    newKeyMap(),
		help:    help.New(),
	}

	l := list.New(nil, cardDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	m.entries = l

	// Placeholders come from the tree so the widgets and the static render agree.
	m.title = textinput.New()
	m.title.Prompt = ""
	m.title.CharLimit = 200
	if n, ok := view.Find(m.tree, view.IDTitle); ok {
		m.title.Placeholder = n.Placeholder
	}
	m.details = textarea.New()
	m.details.ShowLineNumbers = false
	m.details.SetHeight(4)
	if n, ok := view.Find(m.tree, view.IDDescription); ok {
		m.details.Placeholder = n.Placeholder
	}

	m.refreshEntries()
	if m.state.OverlayVisible {
		m.setFocus(focusTitle)
	}
	return m
}

// bodyHeight is the space between the heading and the help footer.
func (m appModel) bodyHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *appModel) resize() {
	m.entries.SetSize(m.width, m.bodyHeight())
	m.help.Width = m.width
	bodyW := modalBodyWidth(m.width)
	m.title.Width = bodyW
	m.details.SetWidth(bodyW)
}

// refreshEntries reloads the list from the tree, keeping the selected card
// when it still exists.
func (m *appModel) refreshEntries() {
	selected := ""
	if it, ok := m.entries.SelectedItem().(entryItem); ok {
		selected = it.card.ID
	}

	group, _ := m.tree.Child(view.KindList)
	items := make([]list.Item, 0, len(group.Children))
	for _, c := range group.Children {
		if c.Kind == view.KindCard {
			items = append(items, entryItem{card: c})
		}
	}
	m.entries.SetItems(items)
	for i, it := range items {
		if it.(entryItem).card.ID == selected {
			m.entries.Select(i)
			break
		}
	}
}

func (m *appModel) setFocus(f overlayFocus) {
	m.focus = f
	m.title.Blur()
	m.details.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusDescription:
		m.details.Focus()
	}
}

// resetOverlay clears the overlay inputs after it closes.
func (m *appModel) resetOverlay() {
	m.title.Reset()
	m.details.Reset()
	m.title.Blur()
	m.details.Blur()
	m.focus = focusTitle
}

func (m appModel) overlaySurfaces() overlaySurfaces {
	return overlaySurfaces{
		fields: map[string]string{
			view.IDTitle:       m.title.View(),
			view.IDDescription: m.details.View(),
		},
		focus: m.focus.nodeID(),
	}
}
