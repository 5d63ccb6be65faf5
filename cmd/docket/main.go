package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"docket-cli/internal/cli"
)

func isStateFile(s string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(s)), ".json")
}

// rewriteStateFileArgs turns `docket <state.json>` into
// `docket render --text --state <state.json>`.
//
// Cobra treats the first positional token as a subcommand, so argv is
// rewritten before parsing. Persistent flags may come first.
func rewriteStateFileArgs(argv []string) []string {
	valueFlags := map[string]bool{
		"--config": true,
		"--format": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			return argv
		case strings.HasPrefix(a, "-"):
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if !isStateFile(a) {
			return argv
		}
		out := make([]string, 0, len(argv)+3)
		out = append(out, argv[:i]...)
		out = append(out, "render", "--text", "--state", argv[i])
		out = append(out, argv[i+1:]...)
		return out
	}
	return argv
}

func main() {
	os.Args = rewriteStateFileArgs(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd()
	cmd.SetArgs(os.Args[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
