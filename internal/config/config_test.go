package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey_ExplicitWins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvKey, "from-env")

	key, err := ResolveKey("from-flag", "")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", key)
}

func TestResolveKey_EnvironmentBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvKey, "from-env")
	writeConfig(t, dir, "from-file")

	key, err := ResolveKey("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
}

func TestResolveKey_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnvKey(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvKey+"=from-dotenv\n"), 0o600))

	key, err := ResolveKey("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", key)
}

func TestResolveKey_ConfigFileSectionAndKey(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnvKey(t)
	writeConfig(t, dir, "from-file")

	key, err := ResolveKey("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-file", key)
}

func TestResolveKey_ExplicitConfigPath(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnvKey(t)

	other := t.TempDir()
	path := filepath.Join(other, "keys.ini")
	require.NoError(t, os.WriteFile(path, []byte("[youtube]\ndeveloper_key = elsewhere\n"), 0o600))

	key, err := ResolveKey("", path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", key)
}

func TestResolveKey_NothingConfigured(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnvKey(t)

	_, err := ResolveKey("", "")
	require.ErrorIs(t, err, ErrNoKey)
}

// unsetEnvKey removes the variable entirely; godotenv refuses to override
// variables that merely exist, even when empty.
func unsetEnvKey(t *testing.T) {
	t.Helper()
	t.Setenv(EnvKey, "placeholder")
	require.NoError(t, os.Unsetenv(EnvKey))
}

func writeConfig(t *testing.T, dir, key string) {
	t.Helper()
	content := "[youtube]\ndeveloper_key = " + key + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0o600))
}
