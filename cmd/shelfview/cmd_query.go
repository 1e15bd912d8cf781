package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/catalog"
	"github.com/HerbHall/shelfview/internal/config"
	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/internal/view"
	"github.com/HerbHall/shelfview/pkg/models"
)

func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	search := fs.String("q", "", "case-insensitive name substring")
	category := fs.String("category", "", "exact category")
	minPrice := fs.String("min-price", "", "minimum price")
	maxPrice := fs.String("max-price", "", "maximum price (range applies only when > 0)")
	inStock := fs.String("in-stock", "", "stock status (true or false)")
	sortCol := fs.String("sort", "", "sort column (id, name, category, price, inStock)")
	order := fs.String("order", "", "sort order (asc or desc)")
	page := fs.Int("page", 1, "page number")
	pageSize := fs.Int("page-size", 0, "page size (10, 20, 30, 50, 100)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("q", *search)
	set("category", *category)
	set("min_price", *minPrice)
	set("max_price", *maxPrice)
	set("in_stock", *inStock)
	set("sort", *sortCol)
	set("order", *order)
	set("page", strconv.Itoa(*page))
	if *pageSize != 0 {
		set("page_size", strconv.Itoa(*pageSize))
	}

	req, err := catalog.ParseListQuery(q)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query: %v\n", err)
		os.Exit(2)
	}

	logger := zap.NewNop()
	cat, err := catalog.Open(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open catalog: %v\n", err)
		os.Exit(1)
	}
	pipeline, err := query.NewPipeline(cat, 0, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}

	snap, err := catalog.NewEngine(pipeline, cfg.GetInt("view.default_page_size")).Query(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query: %v\n", err)
		os.Exit(2)
	}
	printPage(os.Stdout, snap)
}

// printPage renders one page as an aligned table followed by a page line.
func printPage(out io.Writer, snap view.Snapshot) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, col := range models.ProductColumns {
		fmt.Fprintf(tw, "%s\t", col.Label)
	}
	fmt.Fprintln(tw)
	for _, p := range snap.Products {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t\n", p.Name, p.Category, p.Price, models.StockLabel(p.InStock))
	}
	tw.Flush()

	fmt.Fprintf(out, "\npage %d of %d (%d products, sort %s)\n",
		snap.Page.Page, snap.Page.LastPage, snap.Total, snap.Sort)
}
