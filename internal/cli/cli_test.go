package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("GITHUB_REF", "")

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.BuildsPath)
	assert.Empty(t, cfg.Ref)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_RefFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_REF", "refs/heads/main")

	cfg, _, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", cfg.Ref)
}

func TestParse_RefFlagWinsOverEnvironment(t *testing.T) {
	t.Setenv("GITHUB_REF", "refs/heads/main")

	cfg, _, err := Parse([]string{"--ref", "refs/tags/v1.0"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "refs/tags/v1.0", cfg.Ref)
}

func TestParse_BuildsPath(t *testing.T) {
	t.Setenv("GITHUB_REF", "")

	t.Run("long flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--builds", "ci/builds.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "ci/builds.hcl", cfg.BuildsPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-b", "ci/builds.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "ci/builds.hcl", cfg.BuildsPath)
	})

	t.Run("positional argument", func(t *testing.T) {
		cfg, _, err := Parse([]string{"ci/builds.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "ci/builds.hcl", cfg.BuildsPath)
	})

	t.Run("flag takes precedence over positional", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--builds", "a.hcl", "b.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.BuildsPath)
	})
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidInput(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := Parse([]string{"--nope"}, &bytes.Buffer{})
		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("bad log format", func(t *testing.T) {
		_, _, err := Parse([]string{"--log-format", "xml"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log-format")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := Parse([]string{"--log-level", "loud"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log-level")
	})
}
