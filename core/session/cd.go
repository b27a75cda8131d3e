package session

import (
	"fmt"

	"github.com/mimicsh/mimicsh/core/vfs"
)

// cd changes the working directory. The new cwd is recomputed by
// normalizing the expression against the old one, so it is always an
// absolute, dot-free segment sequence. On any error the cwd is left
// untouched.
func (s *Session) cd(args []string) string {
	switch len(args) {
	case 0:
		s.cwd = nil
		return ""
	case 1:
		// handled below
	default:
		return "cd: too many arguments"
	}

	expr := args[0]
	node, err := s.resolve(expr)
	if err != nil {
		return fmt.Sprintf("cd: %v", err)
	}
	if node.Kind != vfs.Dir {
		return fmt.Sprintf("cd: not a directory: %s", expr)
	}

	s.cwd = vfs.Normalize(s.cwd, expr)
	return ""
}
