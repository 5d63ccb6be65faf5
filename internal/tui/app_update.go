package tui

import (
	"docket-cli/internal/msg"
	"docket-cli/internal/update"
	"docket-cli/internal/view"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Init() tea.Cmd {
	if m.state.OverlayVisible {
		return textinput.Blink
	}
	return nil
}

func (m appModel) Update(in tea.Msg) (tea.Model, tea.Cmd) {
	switch in := in.(type) {
	case tea.WindowSizeMsg:
		m.width = in.Width
		m.height = in.Height
		m.resize()
		return m, nil

	case msg.Msg:
		// Application messages can also arrive from commands.
		return m.dispatch(in)

	case tea.KeyMsg:
		if key.Matches(in, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.state.OverlayVisible {
			return m.updateOverlay(in)
		}
		return m.updateList(in)
	}

	// Anything else (cursor blink, list status timers) goes to the widgets.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.state.OverlayVisible {
		m.title, cmd = m.title.Update(in)
		cmds = append(cmds, cmd)
		m.details, cmd = m.details.Update(in)
		cmds = append(cmds, cmd)
	} else {
		m.entries, cmd = m.entries.Update(in)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// dispatch runs one message through the transition, re-projects the tree and
// records it. It is the only place state changes.
func (m appModel) dispatch(in msg.Msg) (tea.Model, tea.Cmd) {
	wasVisible := m.state.OverlayVisible
	m.state = update.Transition(in, m.state)
	m.tree = view.Project(m.state)

	m.log.Debug("dispatch",
		zap.String("msg", msg.Kind(in)),
		zap.Bool("overlay_visible", m.state.OverlayVisible),
		zap.Int("entries", len(m.state.Entries)),
	)
	if m.journal != nil {
		if err := m.journal.Record(m.ctx, in, m.state); err != nil {
			m.log.Warn("journal record failed", zap.String("msg", msg.Kind(in)), zap.Error(err))
		}
	}

	m.refreshEntries()
	switch {
	case wasVisible && !m.state.OverlayVisible:
		m.resetOverlay()
	case !wasVisible && m.state.OverlayVisible:
		m.setFocus(focusTitle)
		return m, textinput.Blink
	}
	return m, nil
}

// activate dispatches whatever the node with id emits. Passive or missing
// nodes do nothing.
func (m appModel) activate(id string) (tea.Model, tea.Cmd) {
	n, ok := view.Find(m.tree, id)
	if !ok {
		return m, nil
	}
	out, ok := n.Activate()
	if !ok {
		return m, nil
	}
	return m.dispatch(out)
}

func (m appModel) updateOverlay(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Cancel):
		return m.activate(view.IDCancel)
	case key.Matches(k, m.keys.Save):
		return m.activate(view.IDSave)
	case key.Matches(k, m.keys.Next):
		m.setFocus(m.focus.next())
		return m, nil
	case key.Matches(k, m.keys.Prev):
		m.setFocus(m.focus.prev())
		return m, nil
	case key.Matches(k, m.keys.Activate) && m.focus.isButton():
		return m.activate(m.focus.nodeID())
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(k)
	case focusDescription:
		m.details, cmd = m.details.Update(k)
	}
	return m, cmd
}

func (m appModel) updateList(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to the list.
	if m.entries.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.New):
			return m.dispatch(msg.ToggleOverlay{Visible: true})
		}
	}
	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(k)
	return m, cmd
}
