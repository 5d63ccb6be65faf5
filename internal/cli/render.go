package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"docket-cli/internal/model"
	"docket-cli/internal/msg"
	"docket-cli/internal/tui"
	"docket-cli/internal/update"
	"docket-cli/internal/view"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		statePath   string
		text        bool
		width       int
		hideOverlay bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Project a state into its display tree",
		Long: `Project a state into its display tree.

Without --state the startup state is used. A state file is JSON: the output
of "docket seed", or just its data value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := model.Seed()
			if statePath != "" {
				loaded, err := loadState(statePath)
				if err != nil {
					return writeErr(cmd, err)
				}
				s = loaded
			}
			if hideOverlay {
				s = update.Transition(msg.ToggleOverlay{Visible: false}, s)
			}
			tree := view.Project(s)
			app.log.Debug("rendered",
				zap.Int("entries", len(s.Entries)),
				zap.Bool("overlay_visible", s.OverlayVisible),
				zap.Bool("text", text),
			)

			if !text {
				return writeOut(cmd, app, map[string]any{"data": tree})
			}
			out := cmd.OutOrStdout()
			w := width
			if w <= 0 {
				w = termWidth(out)
			}
			tui.Configure(app.cfg.Theme, app.cfg.Glyphs)
			_, err := fmt.Fprint(out, tui.RenderTree(tree, w))
			return err
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "JSON state file (default: startup state)")
	cmd.Flags().BoolVar(&text, "text", false, "Render as terminal text instead of a tree")
	cmd.Flags().IntVar(&width, "width", 0, "Text width (default: terminal width or 80)")
	cmd.Flags().BoolVar(&hideOverlay, "hide-overlay", false, "Hide the overlay before projecting")
	return cmd
}

// loadState reads and validates a JSON state file, either a bare state or
// the {"data": ...} envelope that seed writes. Unknown fields are rejected.
// Dangling child ids are allowed; duplicate ids and child cycles are not.
func loadState(path string) (model.State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.State{}, err
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err == nil && len(env.Data) > 0 {
		b = env.Data
	}

	var s model.State
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return model.State{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return model.State{}, fmt.Errorf("invalid state %s: %w", path, err)
	}
	return s, nil
}
