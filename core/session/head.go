package session

import (
	"fmt"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/mimicsh/mimicsh/core/vfs"
)

// head prints the first N lines of a file, 10 by default.
func (s *Session) head(args []string) string {
	opts := getopt.New()
	lineCount := opts.Int('n', 10, "number of lines to print")
	if err := opts.Getopt(append([]string{"head"}, args...), nil); err != nil {
		return fmt.Sprintf("head: %v", err)
	}

	operands := opts.Args()
	if len(operands) == 0 {
		return "head: missing file operand"
	}
	filename := operands[0]

	node, err := s.resolve(filename)
	if err != nil {
		return fmt.Sprintf("head: %v", err)
	}
	if node.Kind != vfs.File {
		return fmt.Sprintf("head: %s: not a file", filename)
	}

	n := *lineCount
	if n <= 0 {
		return ""
	}
	lines := splitLines(node.Text())
	if n < len(lines) {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// splitLines breaks text into lines without a phantom empty line after
// a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
