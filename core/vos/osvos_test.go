package vos_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/tinysh/core/vos"
)

func TestSysOSRunArgvZero(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test runs a POSIX shell script")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "show-argv.sh")
	outFile := filepath.Join(dir, "out.txt")

	content := "#!/bin/sh\nprintf '%s %s' \"$0\" \"$1\" > " + outFile + "\nexit 3\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0755))

	code, err := vos.NewOS().Run(script, []string{"typed-name", "arg1"})
	require.NoError(t, err)

	// The child's failure code is returned, not treated as a spawn error.
	assert.Equal(t, 3, code)

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "typed-name arg1", string(out))
}

func TestSysOSRunSpawnFailure(t *testing.T) {
	_, err := vos.NewOS().Run(filepath.Join(t.TempDir(), "vanished"), []string{"vanished"})
	assert.Error(t, err)
}

func TestLookPathRealOS(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX execute bits")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mytool"), []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", dir)

	got, err := vos.LookPath(vos.NewOS(), "mytool")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mytool"), got)
}
