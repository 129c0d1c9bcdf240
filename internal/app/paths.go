package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .termo/ project
// directory. All fields are pre-computed strings.
type Paths struct {
	Root     string // .termo/
	DB       string // .termo/termo.db
	Config   string // .termo/config.json
	PortFile string // .termo/http.port
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".termo")
	return &Paths{
		Root:     root,
		DB:       filepath.Join(root, "termo.db"),
		Config:   filepath.Join(root, "config.json"),
		PortFile: filepath.Join(root, "http.port"),
	}
}

// EnsureDirs creates the .termo/ directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
