package vfs

import (
	"fmt"
	"strings"
)

// BrokenCwdError reports that the working-directory sequence no longer
// names an existing chain of directories.
type BrokenCwdError struct {
	Segment string
}

func (e *BrokenCwdError) Error() string {
	return fmt.Sprintf("current directory broken: %s missing", e.Segment)
}

// NotFoundError reports that a segment of the normalized path does not
// exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "path not found: " + e.Path
}

// NotADirectoryError reports that traversal had to descend through a
// file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return "not a directory: " + e.Path
}

// splitPath breaks an expression on the separator, discarding empty
// segments so repeated separators collapse.
func splitPath(expr string) []string {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(expr, Separator) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Normalize computes the absolute segment sequence an expression names,
// relative to cwd unless the expression starts with the separator.
// "." segments are dropped and ".." pops the previous segment; popping
// past the root is a silent no-op, like a real shell.
func Normalize(cwd []string, expr string) []string {
	work := splitPath(expr)
	if !strings.HasPrefix(expr, Separator) {
		work = append(append([]string{}, cwd...), work...)
	}

	stack := make([]string, 0, len(work))
	for _, seg := range work {
		switch seg {
		case ".":
			// skip
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return stack
}

// Resolve maps a path expression plus working directory to a node,
// walking down from the root on every call. A file is a valid final
// target; NotADirectoryError only fires when a file shows up as an
// intermediate segment.
func Resolve(root *Node, cwd []string, expr string) (*Node, error) {
	if expr == "" || expr == "." {
		cur := root
		for _, seg := range cwd {
			child, ok := cur.Children[seg]
			if !ok {
				return nil, &BrokenCwdError{Segment: seg}
			}
			cur = child
		}
		return cur, nil
	}

	segments := Normalize(cwd, expr)

	cur := root
	for i, seg := range segments {
		if cur.Kind != Dir {
			return nil, &NotADirectoryError{Path: AbsPath(segments[:i])}
		}
		child, ok := cur.Children[seg]
		if !ok {
			return nil, &NotFoundError{Path: AbsPath(segments)}
		}
		cur = child
	}
	return cur, nil
}
