package vos

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// NewOS returns a VOS backed by the real operating system.
func NewOS() VOS {
	return &sysOS{Fs: afero.NewOsFs()}
}

type sysOS struct {
	afero.Fs
}

var _ VOS = (*sysOS)(nil)

func (*sysOS) Getenv(key string) string {
	return os.Getenv(key)
}

func (*sysOS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (*sysOS) Environ() []string {
	return os.Environ()
}

func (*sysOS) Stdin() io.ReadCloser {
	return os.Stdin
}

func (*sysOS) Stdout() io.WriteCloser {
	return os.Stdout
}

func (*sysOS) Stderr() io.WriteCloser {
	return os.Stderr
}

func (*sysOS) Getwd() (string, error) {
	return os.Getwd()
}

func (*sysOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (*sysOS) Exit(code int) {
	os.Exit(code)
}

// Run launches the executable at path, wiring it to the process's own
// standard streams and blocking until it terminates. argv is forwarded
// verbatim, so the child sees argv[0] as the name it was invoked by even
// when that differs from path.
func (s *sysOS) Run(path string, argv []string) (int, error) {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and failed; that's its business, not ours.
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}
