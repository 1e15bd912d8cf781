// Package backup archives a SQLite product dataset, and optionally the
// configuration that points at it, into a tar.gz file.
package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/HerbHall/shelfview/internal/store"
)

// Backup writes dbPath and, when it exists, configPath into a tar.gz at
// outputPath. The database WAL is checkpointed first so the archived file is
// self-contained. It returns the archived entry names.
func Backup(ctx context.Context, dbPath, configPath, outputPath string) ([]string, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("database file not found: %w", err)
	}
	if err := checkpoint(ctx, dbPath); err != nil {
		return nil, err
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	gw := gzip.NewWriter(outFile)
	tw := tar.NewWriter(gw)

	entries := []string{filepath.Base(dbPath)}
	if err := addFileToTar(tw, dbPath, entries[0]); err != nil {
		return nil, fmt.Errorf("adding database to archive: %w", err)
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			name := filepath.Base(configPath)
			if err := addFileToTar(tw, configPath, name); err != nil {
				return nil, fmt.Errorf("adding config to archive: %w", err)
			}
			entries = append(entries, name)
		}
	}

	if err := errors.Join(tw.Close(), gw.Close()); err != nil {
		return nil, fmt.Errorf("finishing archive: %w", err)
	}
	return entries, nil
}

func checkpoint(ctx context.Context, dbPath string) error {
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Checkpoint(ctx)
}

// addFileToTar adds a single file to the tar archive under the given name.
func addFileToTar(tw *tar.Writer, filePath, archiveName string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = archiveName

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	_, err = io.Copy(tw, f)
	return err
}
