package exceptional

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func ioFailure() error {
	return &fs.PathError{Op: "read", Path: "x", Err: fs.ErrPermission}
}

func raised(fn func()) (r interface{}) {
	defer func() { r = recover() }()
	fn()
	return nil
}

func raisedError(t *testing.T, fn func()) error {
	t.Helper()
	r := raised(fn)
	require.NotNil(t, r, "expected fn to raise")
	err, ok := r.(error)
	require.True(t, ok, "expected an error to be raised, got %T", r)
	return err
}
