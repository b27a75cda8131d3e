// Package session holds the dispatcher: the one stateful object that
// routes textual commands to behavior against a VFS tree.
package session

import (
	"fmt"

	"github.com/mimicsh/mimicsh/core/audit"
	"github.com/mimicsh/mimicsh/core/vfs"
)

// command is the closed set of built-in commands.
type command int

const (
	cmdUnknown command = iota
	cmdExit
	cmdLs
	cmdCd
	cmdWhoami
	cmdRev
	cmdHead
	cmdChown
)

func lookup(name string) command {
	switch name {
	case "exit":
		return cmdExit
	case "ls":
		return cmdLs
	case "cd":
		return cmdCd
	case "whoami":
		return cmdWhoami
	case "rev":
		return cmdRev
	case "head":
		return cmdHead
	case "chown":
		return cmdChown
	default:
		return cmdUnknown
	}
}

// Result is the outcome of one dispatch. Text is printed verbatim when
// non-empty; failures are carried inside it as "<command>: <reason>"
// lines. Quit is set when the session must end after this command.
type Result struct {
	Text string
	Quit bool
}

// Session is a single user's shell state: the tree, the working
// directory, and the audit sink.
type Session struct {
	root     *vfs.Node
	label    string
	user     string
	cwd      []string
	recorder audit.Recorder
}

// New binds a session to a tree. The user string comes from the host
// environment and is echoed by whoami and stamped on audit events.
func New(tree *vfs.Tree, user string, recorder audit.Recorder) *Session {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Session{
		root:     tree.Root,
		label:    tree.Label,
		user:     user,
		recorder: recorder,
	}
}

// Prompt renders the line shown before reading the next command.
func (s *Session) Prompt() string {
	return fmt.Sprintf("[%s]%s$ ", s.label, vfs.AbsPath(s.cwd))
}

// Cwd returns a copy of the working-directory segments.
func (s *Session) Cwd() []string {
	return append([]string(nil), s.cwd...)
}

// Dispatch runs one command. It never fails: every outcome, including
// unknown commands and argument errors, comes back as a Result. The
// audit event is recorded first, before any validation or output.
func (s *Session) Dispatch(name string, args []string) (res Result) {
	// One event per dispatch, failures included. A sink error must not
	// disturb command output.
	_ = s.recorder.Record(s.user, name, args)

	defer func() {
		if r := recover(); r != nil {
			res = Result{Text: fmt.Sprintf("Error executing %s: %v", name, r)}
		}
	}()

	switch lookup(name) {
	case cmdExit:
		return Result{Text: "Bye.", Quit: true}
	case cmdLs:
		return Result{Text: s.ls(args)}
	case cmdCd:
		return Result{Text: s.cd(args)}
	case cmdWhoami:
		return Result{Text: s.user}
	case cmdRev:
		return Result{Text: s.rev(args)}
	case cmdHead:
		return Result{Text: s.head(args)}
	case cmdChown:
		return Result{Text: s.chown(args)}
	default:
		return Result{Text: fmt.Sprintf("Unknown command: %s", name)}
	}
}

func (s *Session) resolve(expr string) (*vfs.Node, error) {
	return vfs.Resolve(s.root, s.cwd, expr)
}
