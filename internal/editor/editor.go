package editor

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"al.essio.dev/pkg/shellescape"
)

// Command builds the editor invocation: command with path as its only
// argument, attached to this process's terminal.
func Command(command, path string) *exec.Cmd {
	cmd := exec.Command(command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Open runs the editor on path and waits for it to exit.
func Open(command, path string) error {
	slog.Info("launching editor", "cmd", shellescape.QuoteCommand([]string{command, path}))

	if err := Command(command, path).Run(); err != nil {
		return fmt.Errorf("editor %q: %w", command, err)
	}
	return nil
}
