// Package core implements the interpreter: a read-dispatch loop over a
// builtin registry, a PATH resolver and an external process launcher.
package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/josephlewis42/tinysh/core/vos"
)

// DefaultPrompt is written before every read.
const DefaultPrompt = "$ "

var promptColor = color.New(color.FgGreen, color.Bold)

// LineSource supplies raw input lines and signals end-of-input with
// io.EOF. readline.Instance satisfies it.
type LineSource interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// Shell is the interpreter. It owns no OS state: the working directory,
// PATH and the standard streams are all reached through the VOS boundary
// on every use.
type Shell struct {
	VirtualOS vos.VOS
	Lines     LineSource

	builtins map[string]ShellBuiltin
	tracer   *log.Logger
}

// ShellOption configures a Shell at construction.
type ShellOption func(*Shell)

// WithTracer routes dispatch tracing to the given logger.
func WithTracer(tracer *log.Logger) ShellOption {
	return func(s *Shell) {
		s.tracer = tracer
	}
}

// WithLineSource replaces the interactive readline line source, mainly so
// tests can script a session.
func WithLineSource(lines LineSource) ShellOption {
	return func(s *Shell) {
		s.Lines = lines
	}
}

// NewShell builds a shell around the given OS boundary. Unless overridden
// it reads lines with a readline editor over the boundary's stdin.
func NewShell(virtOS vos.VOS, opts ...ShellOption) (*Shell, error) {
	shell := &Shell{
		VirtualOS: virtOS,
		builtins:  allBuiltins(),
		tracer:    log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(shell)
	}

	if shell.Lines == nil {
		cfg := &readline.Config{
			Stdin:  readline.NewCancelableStdin(virtOS.Stdin()),
			Stdout: virtOS.Stdout(),
			Stderr: virtOS.Stderr(),
		}
		if err := cfg.Init(); err != nil {
			return nil, err
		}

		rl, err := readline.NewEx(cfg)
		if err != nil {
			return nil, err
		}
		shell.Lines = rl
	}

	return shell, nil
}

// Prompt returns the string shown before each read. Color is applied only
// when stdout is a terminal.
func (s *Shell) Prompt() string {
	return promptColor.Sprint(DefaultPrompt)
}

// Run reads and dispatches one command line at a time until the input
// ends. A nil return is the graceful end-of-input shutdown; the exit
// builtin never returns here because it terminates the process through
// the OS boundary.
func (s *Shell) Run() error {
	for {
		s.Lines.SetPrompt(s.Prompt())
		line, err := s.Lines.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Line canceled, prompt again.

		case err != nil:
			fmt.Fprintf(s.VirtualOS.Stderr(), "tinysh: read error: %v\n", err)
			return err

		default:
			s.Dispatch(tokenize(line))
		}
	}
}

// Close releases the line source.
func (s *Shell) Close() error {
	return s.Lines.Close()
}

// tokenize splits a command line on whitespace. There are no quoting
// rules: a token never contains whitespace, and a blank line yields no
// tokens.
func tokenize(line string) []string {
	return strings.Fields(line)
}

// Dispatch runs a single tokenized command line. The builtin registry is
// consulted first, so a builtin always shadows a like-named executable on
// PATH. Dispatch itself never terminates the interpreter.
func (s *Shell) Dispatch(argv []string) {
	if len(argv) == 0 {
		return
	}

	name := argv[0]
	if builtin, ok := s.builtins[name]; ok {
		s.tracer.Debug("builtin", "name", name)
		builtin.Main(s, argv)
		return
	}

	execPath, err := vos.LookPath(s.VirtualOS, name)
	if err != nil {
		s.tracer.Debug("resolution failed", "name", name, "err", err)
		fmt.Fprintf(s.VirtualOS.Stdout(), "%s: command not found\n", name)
		return
	}

	s.tracer.Debug("launch", "name", name, "path", execPath)
	code, err := s.VirtualOS.Run(execPath, argv)
	if err != nil {
		fmt.Fprintf(s.VirtualOS.Stdout(), "Error executing %s: %v\n", name, err)
		return
	}

	// The child's exit status goes no further than the trace log: there
	// is no $? to feed it into.
	s.tracer.Debug("child finished", "name", name, "code", code)
}
