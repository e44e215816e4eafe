package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/home/tester/.linux-sim.conf"

func newTestSession(t *testing.T, fs afero.Fs, opts Options) (*SessionContext, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var buf bytes.Buffer
	opts.Fs = fs
	opts.Output = &buf
	if opts.ConfigPath == "" {
		opts.ConfigPath = testConfigPath
	}

	ctx, err := NewSessionContext(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return ctx, &buf
}

func TestNewSessionContextDefaults(t *testing.T) {
	ctx, _ := newTestSession(t, afero.NewMemMapFs(), Options{NonInteractive: true})

	assert.Equal(t, "user@ubuntu_Server:/$ ", ctx.Shell.Prompt())
	assert.True(t, ctx.UI.IsNonInteractive())
	assert.Equal(t, testConfigPath, ctx.Config.FilePath())

	names, err := ctx.Shell.Namespace().List("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"bin", "etc", "home", "var"}, names)
}

func TestNewSessionContextReadsConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	conf := "SHELL_USER=alice\nSHELL_HOSTNAME=lab\nHISTORY_LIMIT=2\nSHELL_EXPLAIN=true\n"
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte(conf), 0600))

	ctx, _ := newTestSession(t, fs, Options{})
	assert.Equal(t, "alice@lab:/$ ", ctx.Shell.Prompt())

	opts := ShellOptions(ctx.Config)
	assert.Equal(t, 2, opts.HistoryLimit)
	assert.True(t, opts.Explain)
}

func TestNewSessionContextLogFileOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("LOG_FILE=/logs/config.log\n"), 0600))

	ctx, err := NewSessionContext(Options{
		ConfigPath: testConfigPath,
		LogFile:    "/logs/flag.log",
		LogLevel:   "debug",
		Fs:         fs,
		Output:     &bytes.Buffer{},
	})
	require.NoError(t, err)
	require.NoError(t, ctx.Shell.Execute("pwd"))
	require.NoError(t, ctx.Close())

	raw, err := afero.ReadFile(fs, "/logs/flag.log")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "session started")
	assert.Contains(t, string(raw), "msg=dispatch")
	assert.Contains(t, string(raw), "session ended")

	exists, err := afero.Exists(fs, "/logs/config.log")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewSessionContextBadLogPath(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := NewSessionContext(Options{
		ConfigPath: testConfigPath,
		LogFile:    "/logs/session.log",
		Fs:         fs,
		Output:     &bytes.Buffer{},
	})
	assert.ErrorContains(t, err, "failed to set up logging")
}
