package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func runREPL(ctx context.Context, session *Session, errOut io.Writer) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".affine_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()
	session.Out = rl.Stdout()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := session.Source(ctx, "repl", strings.NewReader(line)); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
	}
}
