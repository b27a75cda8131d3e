package session

import (
	"fmt"
	"strings"

	"github.com/mimicsh/mimicsh/core/vfs"
)

// rev reverses a file's decoded text. When the first argument names
// nothing in the tree, all arguments joined by spaces are reversed as a
// literal string instead. Directories cannot be reversed.
func (s *Session) rev(args []string) string {
	if len(args) == 0 {
		return ""
	}

	node, err := s.resolve(args[0])
	if err != nil {
		return reverse(strings.Join(args, " "))
	}
	if node.Kind == vfs.Dir {
		return fmt.Sprintf("rev: %s is a directory", args[0])
	}
	return reverse(node.Text())
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
