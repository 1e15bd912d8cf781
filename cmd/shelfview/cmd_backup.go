package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/HerbHall/shelfview/internal/backup"
)

func runBackup(args []string) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	dbPath := fs.String("db", "shelfview.db", "SQLite catalog database")
	output := fs.String("output", "", "output file path (default: shelfview-backup-{timestamp}.tar.gz)")
	configFile := fs.String("config", "", "path to config file to include in backup")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *output == "" {
		*output = fmt.Sprintf("shelfview-backup-%s.tar.gz", time.Now().Format("20060102-150405"))
	}

	entries, err := backup.Backup(context.Background(), *dbPath, *configFile, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Backup created: %s %v\n", *output, entries)
}
