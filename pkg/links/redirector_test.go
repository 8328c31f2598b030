package links_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/filesystem"
	"github.com/arthur-debert/fvm/pkg/links"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymlinkRedirector(t *testing.T) {
	root := t.TempDir()
	r := links.NewSymlinkRedirector(filesystem.NewOS())
	link := filepath.Join(root, "saves")
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	require.NoError(t, os.MkdirAll(a, 0755))
	require.NoError(t, os.MkdirAll(b, 0755))

	exists, err := r.Exists(link)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, r.SetTarget(link, a))
	exists, err = r.Exists(link)
	require.NoError(t, err)
	assert.True(t, exists)

	target, err := r.Target(link)
	require.NoError(t, err)
	assert.Equal(t, a, target)

	require.NoError(t, r.SetTarget(link, b))
	target, err = r.Target(link)
	require.NoError(t, err)
	assert.Equal(t, b, target)

	require.NoError(t, r.SetTarget(link, b), "setting the same target is a no-op")

	require.NoError(t, r.Delete(link))
	_, err = os.Lstat(link)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(b)
	assert.NoError(t, err, "target directory survives")
}

func TestSymlinkRedirector_PlainDirectoryIsNotALink(t *testing.T) {
	root := t.TempDir()
	r := links.NewSymlinkRedirector(filesystem.NewOS())
	plain := filepath.Join(root, "mods")
	require.NoError(t, os.MkdirAll(plain, 0755))

	exists, err := r.Exists(plain)
	require.NoError(t, err)
	assert.False(t, exists)

	err = r.Delete(plain)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	_, err = os.Stat(plain)
	assert.NoError(t, err)
}
