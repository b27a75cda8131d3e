// Package vfs implements the in-memory virtual filesystem tree the
// emulator runs against: construction from a declarative document,
// and path resolution relative to a working directory.
package vfs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Separator separates path segments. Node names never contain it.
const Separator = "/"

const (
	DefaultOwner = "root"
	DefaultMode  = "rw"
	DefaultLabel = "VFS"
)

// Kind discriminates directory nodes from file nodes.
type Kind int

const (
	Dir Kind = iota
	File
)

func (k Kind) String() string {
	switch k {
	case Dir:
		return "dir"
	case File:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a single entry in the tree. Exactly one of Content (files)
// and Children (directories) is populated. Owner and Mode are metadata
// only, nothing ever enforces them.
type Node struct {
	Name  string
	Kind  Kind
	Owner string
	Mode  string

	Content  []byte
	Children map[string]*Node
}

// NewDir returns an empty directory with default ownership.
func NewDir(name string) *Node {
	return &Node{
		Name:     name,
		Kind:     Dir,
		Owner:    DefaultOwner,
		Mode:     DefaultMode,
		Children: make(map[string]*Node),
	}
}

// ChildNames returns the directory's child names sorted lexicographically.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor renders the single listing line for the node.
func (n *Node) Descriptor() string {
	size := "-"
	if n.Kind == File {
		size = strconv.Itoa(len(n.Content))
	}
	return fmt.Sprintf("%s\t%s\towner:%s\tsize:%s", n.Name, n.Kind, n.Owner, size)
}

// Text decodes the file content as UTF-8, replacing each invalid byte
// with U+FFFD. Decoding never fails.
func (n *Node) Text() string {
	if utf8.Valid(n.Content) {
		return string(n.Content)
	}
	var sb strings.Builder
	rest := n.Content
	for len(rest) > 0 {
		r, size := utf8.DecodeRune(rest)
		sb.WriteRune(r)
		rest = rest[size:]
	}
	return sb.String()
}

// AbsPath renders a segment sequence as an absolute path, "/" for the
// empty sequence.
func AbsPath(segments []string) string {
	if len(segments) == 0 {
		return Separator
	}
	return Separator + strings.Join(segments, Separator)
}
