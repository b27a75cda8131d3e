package session

import (
	"fmt"
	"strings"

	"github.com/mimicsh/mimicsh/core/vfs"
)

// ls lists the target directory's children sorted by name, or the
// target file's own descriptor line.
func (s *Session) ls(args []string) string {
	expr := ""
	if len(args) > 0 {
		expr = args[0]
	}

	node, err := s.resolve(expr)
	if err != nil {
		return fmt.Sprintf("ls: %v", err)
	}

	if node.Kind == vfs.File {
		return node.Descriptor()
	}

	names := node.ChildNames()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, node.Children[name].Descriptor())
	}
	return strings.Join(lines, "\n")
}
