package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephlewis42/tinysh/core/vos"
)

// ShellBuiltin is a command implemented by the interpreter itself rather
// than by an executable on PATH.
type ShellBuiltin interface {
	// Main runs the builtin. argv holds the full command line including
	// the builtin's own name as element 0.
	Main(s *Shell, argv []string)
}

// ShellBuiltinFunc adapts a plain function to ShellBuiltin.
type ShellBuiltinFunc func(s *Shell, argv []string)

func (f ShellBuiltinFunc) Main(s *Shell, argv []string) {
	f(s, argv)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// allBuiltins builds the builtin registry. The set is closed and small,
// and the table is cheap enough to rebuild per shell.
func allBuiltins() map[string]ShellBuiltin {
	return map[string]ShellBuiltin{
		"echo": ShellBuiltinFunc(Echo),
		"exit": ShellBuiltinFunc(Exit),
		"type": ShellBuiltinFunc(Type),
		"pwd":  ShellBuiltinFunc(Pwd),
		"cd":   ShellBuiltinFunc(Cd),
	}
}

// Echo prints its arguments joined by single spaces, or a bare newline
// when there are none. Arguments are literal data; echo has no flags.
func Echo(s *Shell, argv []string) {
	fmt.Fprintln(s.VirtualOS.Stdout(), strings.Join(argv[1:], " "))
}

// Exit terminates the interpreter through the OS boundary: code 0 with no
// argument, the parsed value when the argument is a signed integer, 1 when
// it isn't. The only builtin that does not return to the dispatcher.
func Exit(s *Shell, argv []string) {
	code := 0
	if len(argv) > 1 {
		parsed, err := strconv.Atoi(argv[1])
		if err != nil {
			code = 1
		} else {
			code = parsed
		}
	}
	s.VirtualOS.Exit(code)
}

// Type reports what its operand names: a builtin, an executable on PATH,
// or nothing. Builtins shadow executables here exactly as in dispatch.
func Type(s *Shell, argv []string) {
	w := s.VirtualOS.Stdout()
	if len(argv) < 2 {
		fmt.Fprintln(w, "type: missing operand")
		return
	}

	name := argv[1]
	if _, ok := s.builtins[name]; ok {
		fmt.Fprintf(w, "%s is a shell builtin\n", name)
		return
	}
	if execPath, err := vos.LookPath(s.VirtualOS, name); err == nil {
		fmt.Fprintf(w, "%s is %s\n", name, execPath)
		return
	}
	fmt.Fprintf(w, "%s: not found\n", name)
}

// Pwd prints the absolute working directory. A failure to query it is
// reported but never fatal.
func Pwd(s *Shell, argv []string) {
	wd, err := s.VirtualOS.Getwd()
	if err != nil {
		fmt.Fprintf(s.VirtualOS.Stdout(), "pwd: error retrieving current directory: %v\n", err)
		return
	}
	fmt.Fprintln(s.VirtualOS.Stdout(), wd)
}

// Cd changes the working directory through the OS boundary. The directory
// is process state, so every later relative resolution sees the change.
func Cd(s *Shell, argv []string) {
	if len(argv) < 2 {
		fmt.Fprintln(s.VirtualOS.Stdout(), "cd: missing operand")
		return
	}

	if err := s.VirtualOS.Chdir(argv[1]); err != nil {
		fmt.Fprintf(s.VirtualOS.Stdout(), "cd: %s: No such file or directory\n", argv[1])
	}
}
