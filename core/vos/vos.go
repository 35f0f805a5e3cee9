// Package vos is the boundary between the interpreter and the operating
// system. The shell never caches OS state like the working directory or
// PATH; every read goes through this boundary so external mutation is
// always observed.
package vos

import (
	"io"

	"github.com/spf13/afero"
)

// VFS is the filesystem half of the OS boundary.
type VFS = afero.Fs

// VEnv reads the process environment.
type VEnv interface {
	// Getenv retrieves the value of the environment variable named by the
	// key. It returns the value, which will be empty if the variable is
	// not present.
	Getenv(key string) string

	// LookupEnv retrieves the value of the environment variable named by
	// the key. If the variable is present in the environment the value
	// (which may be empty) is returned and the boolean is true. Otherwise
	// the returned value will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Environ returns a copy of strings representing the environment, in
	// the form "key=value".
	Environ() []string
}

// VIO provides the standard streams.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VProc exposes process level state and control: the working directory,
// termination and external process launch.
type VProc interface {
	// Getwd returns the absolute path of the current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory.
	Chdir(dir string) error

	// Exit terminates the whole interpreter with the given code.
	Exit(code int)

	// Run launches the executable at path as a child process and blocks
	// until it terminates. argv[0] is the name the command was invoked
	// as, which may differ from path, and is what the child reports as
	// its own name. The returned int is the child's exit code.
	Run(path string, argv []string) (int, error)
}

// VOS is the full OS surface the interpreter runs against.
type VOS interface {
	VEnv
	VIO
	VProc
	VFS
}
