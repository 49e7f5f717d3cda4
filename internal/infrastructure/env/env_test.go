package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvServiceFrom_OverlaysAppEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AGENTOID_TEST_MODEL=base\nAGENTOID_TEST_ONLY_BASE=yes\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("AGENTOID_TEST_MODEL=overlay\n"), 0644))

	t.Setenv("APP_ENV", "test")
	t.Setenv("AGENTOID_TEST_MODEL", "")
	t.Setenv("AGENTOID_TEST_ONLY_BASE", "")
	os.Unsetenv("AGENTOID_TEST_MODEL")
	os.Unsetenv("AGENTOID_TEST_ONLY_BASE")

	svc := NewEnvServiceFrom(dir)

	assert.Equal(t, "test", svc.AppEnv())
	assert.Equal(t, "overlay", svc.Get("AGENTOID_TEST_MODEL"))
	assert.Equal(t, "yes", svc.Get("AGENTOID_TEST_ONLY_BASE"))
}

func TestRequire(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("AGENTOID_TEST_KEY", "  secret ")
	val, err := svc.Require("AGENTOID_TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, "secret", val)

	t.Setenv("AGENTOID_TEST_KEY", "")
	_, err = svc.Require("AGENTOID_TEST_KEY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENTOID_TEST_KEY is missing")
}

func TestTypedGetters(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("AGENTOID_TEST_INT", "15")
	t.Setenv("AGENTOID_TEST_FLOAT", "0.7")
	t.Setenv("AGENTOID_TEST_DUR", "1m30s")
	t.Setenv("AGENTOID_TEST_SECS", "45")
	t.Setenv("AGENTOID_TEST_BOOL", "true")

	n, err := svc.GetInt("AGENTOID_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	f, err := svc.GetFloat("AGENTOID_TEST_FLOAT", 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, f, 1e-9)

	d, err := svc.GetDuration("AGENTOID_TEST_DUR", 0)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	d, err = svc.GetDuration("AGENTOID_TEST_SECS", 0)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	assert.True(t, svc.GetBool("AGENTOID_TEST_BOOL", false))
	assert.Equal(t, "fallback", svc.GetWithDefault("AGENTOID_TEST_UNSET", "fallback"))
}

func TestTypedGetters_InvalidValues(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("AGENTOID_TEST_INT", "many")
	n, err := svc.GetInt("AGENTOID_TEST_INT", 3)
	require.Error(t, err)
	assert.Equal(t, 3, n)

	t.Setenv("AGENTOID_TEST_DUR", "soon")
	_, err = svc.GetDuration("AGENTOID_TEST_DUR", 0)
	require.Error(t, err)

	t.Setenv("AGENTOID_TEST_BOOL", "maybe")
	assert.True(t, svc.GetBool("AGENTOID_TEST_BOOL", true))
}
