package index

import (
	"log/slog"
	"path/filepath"

	"github.com/tormodhaugland/pl/internal/fs"
	"github.com/tormodhaugland/pl/internal/git"
	"github.com/tormodhaugland/pl/internal/model"
)

// Builder discovers projects one level below each configured root.
type Builder struct {
	roots []string
	log   *slog.Logger
}

func NewBuilder(roots []string) *Builder {
	return &Builder{
		roots: roots,
		log:   slog.Default().With("component", "index"),
	}
}

// Build returns every direct child of the roots that is a git repository,
// in root order. Unreadable roots and entries are skipped. The only error
// is a failed home directory lookup for a ~ root.
func (b *Builder) Build() ([]model.Project, error) {
	var projects []model.Project

	for _, spec := range b.roots {
		root, err := fs.ExpandHome(spec)
		if err != nil {
			return nil, err
		}

		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}

		projects = append(projects, b.scanRoot(root)...)
	}

	b.log.Debug("discovery finished", "roots", len(b.roots), "projects", len(projects))
	return projects, nil
}

func (b *Builder) scanRoot(root string) []model.Project {
	if !fs.IsDir(root) {
		b.log.Debug("skipping root", "root", root, "reason", "not a directory")
		return nil
	}

	children, err := fs.ListChildren(root)
	if err != nil {
		b.log.Debug("partial root listing", "root", root, "error", err, "entries", len(children))
	}

	var projects []model.Project
	for _, child := range children {
		if !git.IsRepo(child) {
			continue
		}
		projects = append(projects, model.NewProject(child))
	}

	return projects
}
