package vfs

// Stats summarizes a tree.
type Stats struct {
	Dirs  int
	Files int
	Bytes int64
}

// Collect walks the tree and tallies node counts and file bytes.
func Collect(n *Node) Stats {
	var s Stats
	if n == nil {
		return s
	}
	switch n.Kind {
	case Dir:
		s.Dirs++
		for _, child := range n.Children {
			cs := Collect(child)
			s.Dirs += cs.Dirs
			s.Files += cs.Files
			s.Bytes += cs.Bytes
		}
	case File:
		s.Files++
		s.Bytes += int64(len(n.Content))
	}
	return s
}
