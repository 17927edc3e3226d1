package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ to the user's home directory. Only "~" and
// "~/rest" are expanded; "~user" and every other path are returned unchanged.
// The home directory is only looked up when the path needs it.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ListChildren returns the paths of the entries directly inside dir.
// When the listing fails part way, the entries read so far are returned
// along with the error.
func ListChildren(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)

	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, filepath.Join(dir, entry.Name()))
	}

	return children, err
}

func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
