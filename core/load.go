package core

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/mimicsh/mimicsh/core/vfs"
)

// LoadTree reads and builds the VFS document at path. Any failure is
// reported to the logger and degrades to an empty root so startup
// never aborts over a bad tree.
func LoadTree(fsys afero.Fs, path string, logger *log.Logger) *vfs.Tree {
	if path == "" {
		return vfs.EmptyTree()
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		logger.Warn("VFS file not found, starting with an empty root", "path", path, "err", err)
		return vfs.EmptyTree()
	}

	doc, err := vfs.ParseDocument(data)
	if err != nil {
		logger.Warn("invalid VFS document, starting with an empty root", "path", path, "err", err)
		return vfs.EmptyTree()
	}

	tree, err := vfs.Build(doc)
	if err != nil {
		logger.Warn("could not build VFS, starting with an empty root", "path", path, "err", err)
		return vfs.EmptyTree()
	}
	return tree
}
