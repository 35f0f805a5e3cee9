package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(vos VOS, file string) error {
	d, err := vos.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && isExecutable(m) {
		return nil
	}
	return fs.ErrPermission
}

// isExecutable reports whether mode carries an execute bit. Outside of
// POSIX there are no execute bits, so existence is enough.
func isExecutable(m fs.FileMode) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return m&0111 != 0
}

// LookPath searches for an executable named file in the directories named
// by the PATH environment variable, scanned left to right; the first
// directory holding a match wins. If file contains a slash, it is tried
// directly and PATH is not consulted. The result may be an absolute path
// or a path relative to the current directory.
//
// PATH is read through the OS boundary on every call and results are
// never cached: both PATH and the working directory can change between
// commands.
func LookPath(vos VOS, file string) (string, error) {
	if strings.Contains(file, "/") {
		err := findExecutable(vos, file)
		if err == nil {
			return file, nil
		}
		return "", err
	}
	path := vos.Getenv("PATH")
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(vos, path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
