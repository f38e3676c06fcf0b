package ops

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// memTree builds an in-memory filesystem holding the given files
func memTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, afero.WriteFile(fsys, f, []byte("x"), 0o644))
	}
	return fsys
}

// osTree creates files below dir on disk
func osTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content of "+f), 0o644))
	}
}

func mustMatchers(exprs ...string) []Matcher {
	ms := make([]Matcher, len(exprs))
	for i, e := range exprs {
		ms[i] = regexp.MustCompile(e)
	}
	return ms
}

// failingFs refuses to open one directory
type failingFs struct {
	afero.Fs
	failOn string
}

func (f failingFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == f.failOn {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
