package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/exceptional/pkg/exceptional"
)

func withConfig(t *testing.T, values map[string]string) {
	t.Helper()
	for k, v := range values {
		viper.Set(k, v)
	}
	t.Cleanup(func() {
		viper.Set("policy", "print")
		viper.Set("log-level", "info")
		viper.Set("log-format", "text")
	})
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	return c, &buf
}

func TestPolicyCatcher(t *testing.T) {
	for name, want := range map[string]exceptional.Catcher{
		"ignore":  exceptional.Ignore,
		"rethrow": exceptional.Rethrowing,
		"Sneaky":  exceptional.Sneaky,
	} {
		c, err := policyCatcher(name)
		require.NoError(t, err)
		assert.True(t, exceptional.SameCatcher(want, c), name)
	}

	c, err := policyCatcher("print")
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = policyCatcher("retry")
	assert.EqualError(t, err, `unknown policy "retry"`)
}

func TestConfigureLogger(t *testing.T) {
	withConfig(t, map[string]string{"log-level": "debug", "log-format": "json"})
	require.NoError(t, configureLogger())
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	viper.Set("log-format", "xml")
	assert.Error(t, configureLogger())

	viper.Set("log-level", "loud")
	assert.Error(t, configureLogger())
}

func TestRunParse_Ignore(t *testing.T) {
	withConfig(t, map[string]string{"policy": "ignore"})
	c, out := newTestCommand()

	require.NoError(t, guarded(runParse)(c, []string{"21", "x"}))
	assert.Contains(t, out.String(), "21 -> ThrowsOr[value=42]\n")
	assert.Contains(t, out.String(), "x -> ThrowsOr[exception=*strconv.NumError:")
}

func TestRunParse_Rethrow(t *testing.T) {
	withConfig(t, map[string]string{"policy": "rethrow"})
	c, out := newTestCommand()

	err := guarded(runParse)(c, []string{"1", "x", "3"})
	require.Error(t, err)

	var r *exceptional.Rethrow
	require.True(t, errors.As(err, &r))
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Equal(t, "1 -> ThrowsOr[value=2]\n", out.String())
}

func TestRunParse_Sneaky(t *testing.T) {
	withConfig(t, map[string]string{"policy": "sneaky"})
	c, _ := newTestCommand()

	err := guarded(runParse)(c, []string{"x"})
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	var r *exceptional.Rethrow
	assert.False(t, errors.As(err, &r))
}

func TestRunParse_UnknownPolicy(t *testing.T) {
	withConfig(t, map[string]string{"policy": "retry"})
	c, _ := newTestCommand()

	assert.Error(t, guarded(runParse)(c, []string{"1"}))
}

func TestRunRead(t *testing.T) {
	withConfig(t, map[string]string{"policy": "ignore"})
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(first, []byte("alpha\nbeta\n"), 0o600))
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	c, out := newTestCommand()
	missing := filepath.Join(dir, "missing.txt")

	require.NoError(t, guarded(runRead)(c, []string{first, missing, empty}))
	assert.Equal(t, "alpha\nbeta\n", out.String())
}

func TestRunRead_Rethrow(t *testing.T) {
	withConfig(t, map[string]string{"policy": "rethrow"})
	c, _ := newTestCommand()

	err := guarded(runRead)(c, []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo"), 0o600))

	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}
