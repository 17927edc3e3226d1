package model

import "path/filepath"

// Project is a discovered project directory. Values are never mutated after
// discovery.
type Project struct {
	Name string // base name of the directory
	Path string // absolute path to the directory
}

func NewProject(path string) Project {
	return Project{
		Name: filepath.Base(path),
		Path: path,
	}
}

func (p Project) ReadmePath() string {
	return filepath.Join(p.Path, "README.md")
}
