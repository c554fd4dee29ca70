package palette_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/palette"
)

func TestDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "palette")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := palette.NewDB(filepath.Join(dir, "palette.db"))
	require.NoError(t, err)
	defer db.Close()

	want := grayPalette(16)
	require.NoError(t, db.Store("gray", want))

	got, err := db.Load("gray")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	missing, err := db.Load("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDBReplace(t *testing.T) {
	dir, err := ioutil.TempDir("", "palette")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := palette.NewDB(filepath.Join(dir, "palette.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Store("gray", grayPalette(16)))
	require.NoError(t, db.Store("gray", grayPalette(8)))

	got, err := db.Load("gray")
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestDBNames(t *testing.T) {
	dir, err := ioutil.TempDir("", "palette")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := palette.NewDB(filepath.Join(dir, "palette.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Store("zebra", grayPalette(4)))
	require.NoError(t, db.Store("aardvark", grayPalette(4)))

	names, err := db.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"aardvark", "zebra"}, names)
}
