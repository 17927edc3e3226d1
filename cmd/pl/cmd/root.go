package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tormodhaugland/pl/internal/config"
	"github.com/tormodhaugland/pl/internal/editor"
	"github.com/tormodhaugland/pl/internal/index"
	"github.com/tormodhaugland/pl/internal/logging"
	"github.com/tormodhaugland/pl/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "pl",
	Short: "Project launcher - pick a git project and open it in your editor",
	Long: `pl lists the git repositories directly under your project directories,
filters them as you type, previews each README, and opens the chosen
project in your editor.

Configuration is read from $XDG_CONFIG_HOME/pl/config.toml:

  project_dirs   = ["~/Projects"]
  editor_command = "nvim"`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// editorFunc opens path with command.
type editorFunc func(command, path string) error

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	closeLog, err := logging.Init(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("pl needs an interactive terminal")
	}

	projects, err := index.NewBuilder(cfg.ProjectDirs).Build()
	if err != nil {
		return fmt.Errorf("failed to discover projects: %w", err)
	}

	result, err := tui.Run(projects)
	if err != nil {
		return fmt.Errorf("failed to run launcher: %w", err)
	}

	handOff(cfg.EditorCommand, result, editor.Open)
	return nil
}

// handOff opens the picked project, if any. Editor failures are logged and
// otherwise ignored.
func handOff(command string, result tui.Result, open editorFunc) {
	if !result.Open {
		slog.Debug("exited without opening a project")
		return
	}

	if err := open(command, result.Project.Path); err != nil {
		slog.Warn("editor failed", "project", result.Project.Path, "error", err)
	}
}
