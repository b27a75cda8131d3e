// Package core wires the VFS, session, and audit sink into a runnable
// emulator: start-script playback followed by an interactive prompt.
package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/mimicsh/mimicsh/core/session"
)

var (
	colorEcho    = color.New(color.FgCyan)
	colorComment = color.New(color.Faint)
)

// Options configures the IO surface of an Emulator. Zero values fall
// back to the host's real filesystem and standard streams.
type Options struct {
	HostFS afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Emulator drives one Session from a start script and an interactive
// read loop. Commands run to completion one at a time; the only ways
// out are the exit command and end of input.
type Emulator struct {
	Session *session.Session

	hostFS afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

func New(sess *session.Session, opts Options) *Emulator {
	if opts.HostFS == nil {
		opts.HostFS = afero.NewOsFs()
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Emulator{
		Session: sess,
		hostFS:  opts.HostFS,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		logger:  opts.Logger,
	}
}

// Run replays the start script when one is configured, then reads
// commands interactively until exit or EOF.
func (e *Emulator) Run(startScript string) error {
	if startScript != "" {
		if quit := e.RunScript(startScript); quit {
			return nil
		}
	}
	return e.interact()
}

// RunScript replays a script line by line. Blank lines and lines
// starting with '#' are echoed without being dispatched; every other
// line is echoed as ">>> line" first, as if the user typed it. Returns
// true when the script ran an exit command.
func (e *Emulator) RunScript(path string) bool {
	f, err := e.hostFS.Open(path)
	if err != nil {
		e.logger.Warn("start script not found", "path", path, "err", err)
		return false
	}
	defer f.Close()

	fmt.Fprintf(e.stdout, "--- Executing start script: %s ---\n", path)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			fmt.Fprintln(e.stdout, colorComment.Sprint(line))
			continue
		}

		fmt.Fprintln(e.stdout, colorEcho.Sprint(">>> "+line))
		res, ok := e.dispatchLine(trimmed)
		if !ok {
			continue
		}
		if res.Text != "" {
			fmt.Fprintln(e.stdout, res.Text)
		}
		if res.Quit {
			return true
		}
	}
	if err := scanner.Err(); err != nil {
		e.logger.Warn("error reading start script", "path", path, "err", err)
	}
	return false
}

func (e *Emulator) interact() error {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(e.stdin),
		Stdout: e.stdout,
		Stderr: e.stderr,
	}
	if err := cfg.Init(); err != nil {
		return err
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(e.Session.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			fmt.Fprintln(e.stdout)
			return nil
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, ok := e.dispatchLine(line)
		if !ok {
			continue
		}
		if res.Text != "" {
			fmt.Fprintln(e.stdout, res.Text)
		}
		if res.Quit {
			return nil
		}
	}
}

// dispatchLine tokenizes one input line and dispatches it. The second
// return is false when the line produced nothing to dispatch.
func (e *Emulator) dispatchLine(line string) (session.Result, bool) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		fmt.Fprintln(e.stderr, "syntax error: unexpected end of line")
		return session.Result{}, false
	}
	if len(tokens) == 0 {
		return session.Result{}, false
	}
	return e.Session.Dispatch(tokens[0], tokens[1:]), true
}
