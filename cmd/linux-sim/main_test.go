package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = "/home/tester/.linux-sim.conf"

// execute runs the root command against an in-memory filesystem and returns its output
func execute(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	appFs = fs
	execFile = ""
	resetForce = false
	logFile = ""
	logLevel = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", testConfig}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "linux-sim version "), out)
}

func TestExecArguments(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "", "exec", "cd /home/user", "pwd")
	require.NoError(t, err)

	want := "user@ubuntu_Server:/$ cd /home/user\n" +
		"Current directory: /home/user\n" +
		"user@ubuntu_Server:/home/user$ pwd\n" +
		"/home/user\n"
	assert.Equal(t, want, out)
}

func TestExecScriptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	script := "# make a project\nmkdir /work\ntouch /work/readme\nls /work\n"
	require.NoError(t, afero.WriteFile(fs, "/scripts/tour.txt", []byte(script), 0644))

	out, err := execute(t, fs, "", "exec", "--file", "/scripts/tour.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "[✓] Directory '/work' created")
	assert.True(t, strings.HasSuffix(out, "$ ls /work\nreadme\n"), out)
}

func TestExecStdin(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "whoami\nexit\npwd\n", "exec", "-f", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "$ whoami\nuser\n")
	assert.NotContains(t, out, "$ pwd")
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing to run", []string{"exec"}, "nothing to run"},
		{"both sources", []string{"exec", "-f", "x", "pwd"}, "cannot be combined"},
		{"missing script", []string{"exec", "-f", "/nope.txt"}, "failed to open script"},
		{"bad log level", []string{"--log-level", "loud", "exec", "pwd"}, "invalid --log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, afero.NewMemMapFs(), "", tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestExecWritesLogFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := execute(t, fs, "", "--log-file", "/logs/sim.log", "--log-level", "debug", "exec", "ls")
	require.NoError(t, err)

	raw, err := afero.ReadFile(fs, "/logs/sim.log")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "command=ls")
}

func TestConfigSetAndGet(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "", "config", "set", "SHELL_USER", "alice")
	require.NoError(t, err)
	assert.Equal(t, "[✓] SHELL_USER set to \"alice\"\n", out)

	out, err = execute(t, fs, "", "config", "get", "SHELL_USER")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	out, err = execute(t, fs, "", "config", "get", "HISTORY_LIMIT")
	require.NoError(t, err)
	assert.Equal(t, "500\n", out)

	out, err = execute(t, fs, "", "exec", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice@ubuntu_Server:/$ whoami\nalice\n", out)
}

func TestConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{"config", "set", "SHEL_USER", "x"}, "unknown key SHEL_USER, did you mean SHELL_USER?"},
		{"unknown get", []string{"config", "get", "LOG_LEVL"}, "did you mean LOG_LEVEL?"},
		{"bad limit", []string{"config", "set", "HISTORY_LIMIT", "lots"}, "invalid value for HISTORY_LIMIT"},
		{"bad format", []string{"config", "set", "LOG_FORMAT", "xml"}, "invalid value for LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			_, err := execute(t, fs, "", tt.args...)
			assert.ErrorContains(t, err, tt.want)

			exists, _ := afero.Exists(fs, testConfig)
			assert.False(t, exists, "rejected values must not create the config file")
		})
	}
}

func TestConfigList(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := execute(t, fs, "", "config", "set", "SHELL_EXPLAIN", "true")
	require.NoError(t, err)

	out, err := execute(t, fs, "", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file: "+testConfig)
	assert.Contains(t, out, `SHELL_EXPLAIN   = "true"               (file)`)
	assert.Contains(t, out, `SHELL_USER      = "user"               (default)`)
}

func TestConfigResetForce(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := execute(t, fs, "", "config", "set", "SHELL_HOSTNAME", "lab")
	require.NoError(t, err)

	out, err := execute(t, fs, "", "config", "reset", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset complete!")

	out, err = execute(t, fs, "", "config", "get", "SHELL_HOSTNAME")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu_Server\n", out)
}

func TestConfigUnset(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := execute(t, fs, "", "config", "set", "HISTORY_LIMIT", "10")
	require.NoError(t, err)

	out, err := execute(t, fs, "", "config", "unset", "HISTORY_LIMIT")
	require.NoError(t, err)
	assert.Equal(t, "[✓] HISTORY_LIMIT unset (default \"500\")\n", out)

	raw, err := afero.ReadFile(fs, testConfig)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "HISTORY_LIMIT")

	out, err = execute(t, fs, "", "config", "unset", "HISTORY_LIMIT")
	require.NoError(t, err)
	assert.Equal(t, "[INFO] HISTORY_LIMIT is not set; using default \"500\"\n", out)

	_, err = execute(t, fs, "", "config", "unset", "HISTORY_LIMT")
	assert.ErrorContains(t, err, "did you mean HISTORY_LIMIT?")
}

func TestConfigUnknownKeysInFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfig, []byte("SHELL_USER=dana\nOLD_SETTING=1\n"), 0600))

	out, err := execute(t, fs, "", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `SHELL_USER      = "dana"               (file)`)
	assert.Contains(t, out, "[WARNING] Unknown key OLD_SETTING is ignored")

	out, err = execute(t, fs, "", "config", "unset", "OLD_SETTING")
	require.NoError(t, err)
	assert.Equal(t, "[✓] OLD_SETTING removed\n", out)

	out, err = execute(t, fs, "", "config", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "OLD_SETTING")
}
