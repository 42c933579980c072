package projectroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "tsconfig.json"), []byte("{}"), 0o644))

	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = Find(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFind_NearestWins(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	pkg := filepath.Join(root, "packages", "web")
	require.NoError(t, os.MkdirAll(pkg, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkg, "package.json"), []byte("{}"), 0o644))

	got, err := Find(filepath.Join(pkg))
	require.NoError(t, err)
	assert.Equal(t, pkg, got)
}

func TestStatic(t *testing.T) {
	got, err := Static("/work/app").ProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, "/work/app", got)
}
