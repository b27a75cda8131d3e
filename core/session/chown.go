package session

import "fmt"

// chown rewrites the owner metadata of a node. The owner string is
// free-form and never checked against anything.
func (s *Session) chown(args []string) string {
	if len(args) < 2 {
		return "chown: usage: chown owner path"
	}

	owner, expr := args[0], args[1]
	node, err := s.resolve(expr)
	if err != nil {
		return fmt.Sprintf("chown: %v", err)
	}
	node.Owner = owner
	return ""
}
