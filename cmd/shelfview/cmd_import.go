package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HerbHall/shelfview/internal/catalog"
	pkgcatalog "github.com/HerbHall/shelfview/pkg/catalog"
)

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	input := fs.String("input", "", "YAML dataset to import (default: embedded demo dataset)")
	output := fs.String("output", "shelfview.db", "SQLite database to write")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cat := pkgcatalog.NewCatalog()
	if *input != "" {
		var err error
		cat, err = pkgcatalog.LoadYAMLFile(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
			os.Exit(1)
		}
	}

	n, err := catalog.Import(context.Background(), cat, *output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d products into %s\n", n, *output)
}
