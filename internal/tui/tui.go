package tui

import (
	"context"

	"docket-cli/internal/logger"
	"docket-cli/internal/model"
	"docket-cli/internal/msg"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder receives every dispatched message with the state it produced.
type Recorder interface {
	Record(ctx context.Context, m msg.Msg, after model.State) error
}

type Options struct {
	State   model.State
	Journal Recorder
	Logger  logger.Logger
	// Theme is auto, light or dark. Glyphs is unicode or ascii.
	Theme  string
	Glyphs string
}

func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference()
	Configure(opts.Theme, opts.Glyphs)
	m := newAppModel(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
