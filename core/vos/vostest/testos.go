// Package vostest provides a deterministic OS boundary and a scripted
// session harness for interpreter tests.
package vostest

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/josephlewis42/tinysh/core"
	"github.com/josephlewis42/tinysh/core/vos"
)

// Launch records one external process launch made through the fake OS.
type Launch struct {
	Path string
	Argv []string
}

// FakeOS is a vos.VOS for tests: in-memory filesystem and environment,
// buffered output, recorded launches and recorded exits instead of real
// process control.
type FakeOS struct {
	afero.Fs
	*vos.MapEnv

	// Wd is the current working directory.
	Wd string

	// Launches records every call to Run, in order.
	Launches []Launch
	// LaunchCode is returned as the child exit code of every launch.
	LaunchCode int
	// LaunchErr, when set, makes every launch fail as a spawn error.
	LaunchErr error

	// Exited and ExitCode record a call to Exit. The real implementation
	// never returns from Exit; here the scripted line source dries up
	// instead so the loop unwinds.
	Exited   bool
	ExitCode int

	out bytes.Buffer
	vio *vos.VIOAdapter
}

var _ vos.VOS = (*FakeOS)(nil)

// NewFakeOS returns a fake OS rooted at "/" with an empty environment.
func NewFakeOS() *FakeOS {
	f := &FakeOS{
		Fs:     afero.NewMemMapFs(),
		MapEnv: vos.NewMapEnv(),
		Wd:     "/",
	}
	f.vio = vos.NewVIOAdapter(nil, &f.out, &f.out)
	return f
}

func (f *FakeOS) Stdin() io.ReadCloser {
	return f.vio.Stdin()
}

func (f *FakeOS) Stdout() io.WriteCloser {
	return f.vio.Stdout()
}

func (f *FakeOS) Stderr() io.WriteCloser {
	return f.vio.Stderr()
}

// Output returns everything written to stdout and stderr so far.
func (f *FakeOS) Output() []byte {
	return f.out.Bytes()
}

func (f *FakeOS) Getwd() (string, error) {
	return f.Wd, nil
}

func (f *FakeOS) Chdir(dir string) error {
	if !strings.HasPrefix(dir, "/") {
		dir = path.Join(f.Wd, dir)
	}

	stat, err := f.Stat(dir)
	if err != nil {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	if !stat.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrInvalid}
	}

	f.Wd = dir
	return nil
}

func (f *FakeOS) Exit(code int) {
	f.Exited = true
	f.ExitCode = code
}

func (f *FakeOS) Run(execPath string, argv []string) (int, error) {
	if f.LaunchErr != nil {
		return -1, f.LaunchErr
	}
	f.Launches = append(f.Launches, Launch{Path: execPath, Argv: argv})
	return f.LaunchCode, nil
}

// WriteExecutable drops an executable file at path, creating parents.
func (f *FakeOS) WriteExecutable(execPath string) error {
	if err := f.MkdirAll(path.Dir(execPath), 0755); err != nil {
		return err
	}
	return afero.WriteFile(f.Fs, execPath, []byte("#!/bin/sh\n"), 0755)
}

// Cmd scripts a whole interpreter session against a fake OS, similar in
// spirit to exec.Cmd.
type Cmd struct {
	// Script holds the input lines, replayed in order before EOF.
	Script []string
	// Setup prepares fixtures on the fake OS before the session starts.
	Setup func(fakeOS *FakeOS) error

	OS    *FakeOS
	lines *scriptLines
}

// Command builds a session that will replay the given input lines.
func Command(script ...string) *Cmd {
	return &Cmd{Script: script, OS: NewFakeOS()}
}

// Run replays the session and waits for the loop to unwind.
func (c *Cmd) Run() error {
	if c.Setup != nil {
		if err := c.Setup(c.OS); err != nil {
			return err
		}
	}

	c.lines = &scriptLines{os: c.OS, script: c.Script}
	shell, err := core.NewShell(c.OS, core.WithLineSource(c.lines))
	if err != nil {
		return err
	}
	defer shell.Close()

	return shell.Run()
}

// CombinedOutput runs the session and returns everything the interpreter
// wrote to stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	if err := c.Run(); err != nil {
		return nil, err
	}
	return c.OS.Output(), nil
}

// PromptCount reports how many times the prompt was drawn.
func (c *Cmd) PromptCount() int {
	return c.lines.prompts
}

// scriptLines replays a fixed script, then reports end-of-input. It also
// dries up once the fake OS records an exit, standing in for the real
// os.Exit which never returns.
type scriptLines struct {
	os      *FakeOS
	script  []string
	prompts int
}

var _ core.LineSource = (*scriptLines)(nil)

func (s *scriptLines) SetPrompt(prompt string) {
	s.prompts++
}

func (s *scriptLines) Readline() (string, error) {
	if s.os.Exited || len(s.script) == 0 {
		return "", io.EOF
	}

	line := s.script[0]
	s.script = s.script[1:]
	return line, nil
}

func (s *scriptLines) Close() error {
	return nil
}
