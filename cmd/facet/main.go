package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/facet/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	stateDir := flag.String("state", "", "directory holding the selection record (optional)")
	catalogSrc := flag.String("catalog", "", "catalog URL, or path to a catalog JSON file (optional)")
	theme := flag.String("theme", "", "theme name (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, StateDir: *stateDir, Theme: *theme}
	if src := *catalogSrc; src != "" {
		if info, err := os.Stat(src); err == nil && !info.IsDir() {
			opts.CatalogFile = src
		} else {
			opts.CatalogURL = src
		}
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "facet: %v\n", err)
		return 1
	}
	return 0
}
