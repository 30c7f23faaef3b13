package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubHome(t *testing.T, home string, err error) {
	t.Helper()
	original := userHomeDir
	t.Cleanup(func() { userHomeDir = original })
	userHomeDir = func() (string, error) { return home, err }
}

func TestDataDir_XDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := dataDirFor("linux")
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestDataDir_RelativeXDGIgnored(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "relative/data")
	stubHome(t, "/home/me", nil)

	got, err := dataDirFor("linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/me", ".local", "share"), got)
}

func TestDataDir_LinuxFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	stubHome(t, "/home/me", nil)

	got, err := dataDirFor("linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/me", ".local", "share"), got)
}

func TestDataDir_Darwin(t *testing.T) {
	stubHome(t, "/Users/me", nil)

	got, err := dataDirFor("darwin")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/Users/me", "Library", "Application Support"), got)
}

func TestDataDir_Windows(t *testing.T) {
	t.Setenv("APPDATA", `C:\Users\me\AppData\Roaming`)

	got, err := dataDirFor("windows")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\me\AppData\Roaming`, got)

	t.Setenv("APPDATA", "")
	_, err = dataDirFor("windows")
	assert.ErrorIs(t, err, ErrNoDataDir)
}

func TestDataDir_NoHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	stubHome(t, "", errors.New("$HOME is not defined"))

	_, err := dataDirFor("linux")
	assert.ErrorIs(t, err, ErrNoDataDir)

	_, err = dataDirFor("darwin")
	assert.ErrorIs(t, err, ErrNoDataDir)
}

func TestResolveDBPath_ExplicitVerbatim(t *testing.T) {
	got, err := ResolveDBPath("some/where/custom.db")
	require.NoError(t, err)
	assert.Equal(t, "some/where/custom.db", got)
}

func TestResolveDBPath_Default(t *testing.T) {
	if runtimeIsUnixLike() {
		dir := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dir)

		got, err := ResolveDBPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, DefaultDBName), got)
		return
	}

	got, err := ResolveDBPath("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDBName, filepath.Base(got))
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", DefaultDBName)

	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// already present is fine
	require.NoError(t, EnsureParentDir(path))
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	assert.Equal(t, filepath.Join("/cfg", "moodlog", "config.yaml"), ConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	stubHome(t, "/home/me", nil)
	assert.Equal(t, filepath.Join("/home/me", ".config", "moodlog", "config.yaml"), ConfigPath())
}

func runtimeIsUnixLike() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios":
		return false
	default:
		return true
	}
}
