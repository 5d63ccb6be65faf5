package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"docket-cli/internal/config"
	"docket-cli/internal/format"
	"docket-cli/internal/logger"
	"docket-cli/internal/model"
	"docket-cli/internal/store"
	"docket-cli/internal/tui"
	"docket-cli/internal/view"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type App struct {
	ConfigPath string
	Pretty     bool
	Format     string

	cfg config.Config
	log logger.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:          "docket",
		Short:        "Docket: a small list manager (TUI + CLI)",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  docket

  # Print the display tree of the seeded state
  docket render --pretty

  # Same, as terminal text without the overlay
  docket render --text --hide-overlay
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				return runTUI(cmd, app)
			}
			// Not a terminal: print one static frame instead.
			tui.Configure(app.cfg.Theme, app.cfg.Glyphs)
			_, err := fmt.Fprint(out, tui.RenderTree(view.Project(model.Seed()), termWidth(out)))
			return err
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.Valid(app.Format) {
			return writeErr(cmd, fmt.Errorf("unknown format: %s (want json|edn)", app.Format))
		}
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg

		log, err := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.PrettyLog, File: cfg.LogFile})
		if err != nil {
			return writeErr(cmd, fmt.Errorf("logger: %w", err))
		}
		app.log = log.With(zap.String("command", cmd.CommandPath()))
		app.log.Debug("start")
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		// Sync fails on some terminals' stderr; the file sink is what matters.
		_ = app.log.Sync()
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("DOCKET_CONFIG", ""), "Path to config.yaml (default: ~/.docket/config.yaml)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DOCKET_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newJournalCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	opts := tui.Options{
		State:  model.Seed(),
		Logger: app.log,
		Theme:  app.cfg.Theme,
		Glyphs: app.cfg.Glyphs,
	}
	if app.cfg.Journal != "" {
		j, err := store.OpenJournal(cmd.Context(), app.cfg.Journal)
		if err != nil {
			return writeErr(cmd, err)
		}
		defer j.Close()
		opts.Journal = j
	}
	return tui.Run(cmd.Context(), opts)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// termWidth is the column count of w when it is a terminal, else 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
