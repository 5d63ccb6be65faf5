package tui

import (
	"fmt"
	"io"

	"docket-cli/internal/view"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// entryItem wraps a projected card so the list can hold it.
type entryItem struct {
	card view.Node
}

func (it entryItem) FilterValue() string {
	title, _ := it.card.Child(view.KindTitle)
	return title.Text
}

type cardDelegate struct{}

func (d cardDelegate) Height() int  { return 4 } // 2 inner lines + border top/bottom
func (d cardDelegate) Spacing() int { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		return
	}
	it, ok := item.(entryItem)
	if !ok {
		fmt.Fprint(w, fitLine(fmt.Sprint(item), totalW))
		return
	}
	fmt.Fprint(w, renderCard(it.card, totalW, index == m.Index()))
}
