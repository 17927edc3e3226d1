package git

import (
	"os"
	"path/filepath"
)

// IsRepo reports whether path has a .git entry directly inside it. Only
// existence is checked, so worktrees and submodules (where .git is a file)
// count too.
func IsRepo(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}
