package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephlewis42/tinysh/core/vos/vostest"
)

func TestRunStopsAtEndOfInput(t *testing.T) {
	cmd := vostest.Command()

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.False(t, cmd.OS.Exited)
}

func TestRunPromptsAgainAfterUnknownCommand(t *testing.T) {
	cmd := vostest.Command("zzzznotacommand", "echo still here")

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, "zzzznotacommand: command not found\nstill here\n", string(out))
	// One prompt per line plus the one drawn before end-of-input.
	assert.Equal(t, 3, cmd.PromptCount())
}

func TestDispatchLaunchesExternal(t *testing.T) {
	cmd := vostest.Command("foo a b")
	cmd.Setup = func(fakeOS *vostest.FakeOS) error {
		fakeOS.Setenv("PATH", "/bin")
		return fakeOS.WriteExecutable("/bin/foo")
	}

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Empty(t, out)
	require.Len(t, cmd.OS.Launches, 1)
	launch := cmd.OS.Launches[0]
	assert.Equal(t, "/bin/foo", launch.Path)
	// argv[0] stays the typed name, not the resolved path.
	assert.Equal(t, []string{"foo", "a", "b"}, launch.Argv)
}

func TestDispatchBuiltinShadowsExternal(t *testing.T) {
	cmd := vostest.Command("echo hi")
	cmd.Setup = func(fakeOS *vostest.FakeOS) error {
		fakeOS.Setenv("PATH", "/bin")
		return fakeOS.WriteExecutable("/bin/echo")
	}

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, "hi\n", string(out))
	assert.Empty(t, cmd.OS.Launches)
}

func TestDispatchReportsSpawnFailure(t *testing.T) {
	cmd := vostest.Command("foo")
	cmd.Setup = func(fakeOS *vostest.FakeOS) error {
		fakeOS.Setenv("PATH", "/bin")
		fakeOS.LaunchErr = errors.New("text file busy")
		return fakeOS.WriteExecutable("/bin/foo")
	}

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	// Spawn failures are reported and absorbed; the loop keeps going.
	assert.Equal(t, "Error executing foo: text file busy\n", string(out))
}

func TestDispatchIgnoresBlankLines(t *testing.T) {
	cmd := vostest.Command("", "   \t  ")

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Equal(t, 3, cmd.PromptCount())
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected int
	}{
		{"no-arg", "exit", 0},
		{"numeric", "exit 7", 7},
		{"negative", "exit -3", -3},
		{"unparsable", "exit abc", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := vostest.Command(tc.line, "echo never reached")

			out, err := cmd.CombinedOutput()
			require.NoError(t, err)

			assert.True(t, cmd.OS.Exited)
			assert.Equal(t, tc.expected, cmd.OS.ExitCode)
			// Nothing after exit is read or run.
			assert.Empty(t, out)
		})
	}
}

func TestCdChangesLaterResolution(t *testing.T) {
	cmd := vostest.Command("cd /home/user", "cd sub", "pwd")
	cmd.Setup = func(fakeOS *vostest.FakeOS) error {
		return fakeOS.MkdirAll("/home/user/sub", 0755)
	}

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, "/home/user/sub\n", string(out))
}

func TestCdFailureLeavesDirectoryUnchanged(t *testing.T) {
	cmd := vostest.Command("cd /no/such/dir", "pwd")

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, "cd: /no/such/dir: No such file or directory\n/\n", string(out))
}
