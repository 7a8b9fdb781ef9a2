package env_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/adoption-portal/pkg/env"
)

func TestParse_Returns(t *testing.T) {
	t.Setenv("PORTAL_TEST_TIMEOUT", "5s")
	t.Setenv("PORTAL_TEST_FLAG", "nope")

	d, err := env.Parse[time.Duration]("PORTAL_TEST_TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)

	_, err = env.Parse[string]("PORTAL_TEST_MISSING")
	assert.ErrorIs(t, err, env.ErrNotFound)

	_, err = env.Parse[bool]("PORTAL_TEST_FLAG")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, env.ErrNotFound)
}

func TestParseOptional_ReturnsNilWhenMissing(t *testing.T) {
	v, err := env.ParseOptional[int]("PORTAL_TEST_MISSING_INT")
	require.NoError(t, err)
	assert.Nil(t, v)

	b, err := env.ParseDefault("PORTAL_TEST_MISSING_BOOL", true)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestLoad_ReadsDotenvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("PORTAL_TEST_DOTENV=from-file\nPORTAL_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("PORTAL_TEST_PRESET", "from-process")
	t.Cleanup(func() { _ = os.Unsetenv("PORTAL_TEST_DOTENV") })

	require.NoError(t, env.Load(file, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "from-file", os.Getenv("PORTAL_TEST_DOTENV"))
	assert.Equal(t, "from-process", os.Getenv("PORTAL_TEST_PRESET"))
}
