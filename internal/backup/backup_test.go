package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/shelfview/internal/store"
	"github.com/HerbHall/shelfview/internal/testutil"
)

func seedDB(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "shelfview.db")
	db, err := store.New(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.MigrateProducts(ctx))
	require.NoError(t, db.ReplaceProducts(ctx, testutil.Produce()))
	return path
}

func archiveNames(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gr, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gr)

	var names []string
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	return names
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := seedDB(t, dir)
	cfgPath := filepath.Join(dir, "shelfview.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog:\n  source: sqlite\n"), 0o600))
	out := filepath.Join(dir, "backup.tar.gz")

	entries, err := Backup(context.Background(), dbPath, cfgPath, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"shelfview.db", "shelfview.yaml"}, entries)
	assert.Equal(t, entries, archiveNames(t, out))
}

func TestBackup_MissingConfigSkipped(t *testing.T) {
	dir := t.TempDir()
	dbPath := seedDB(t, dir)
	out := filepath.Join(dir, "backup.tar.gz")

	entries, err := Backup(context.Background(), dbPath, filepath.Join(dir, "absent.yaml"), out)
	require.NoError(t, err)
	assert.Equal(t, []string{"shelfview.db"}, entries)
}

func TestBackup_MissingDatabase(t *testing.T) {
	dir := t.TempDir()
	_, err := Backup(context.Background(), filepath.Join(dir, "none.db"), "", filepath.Join(dir, "out.tar.gz"))
	assert.Error(t, err)
}
