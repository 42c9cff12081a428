//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

func runPuzzle[T comparable](items []Item[T], cfg Config, jsonOut bool) {
	r := Run(items, cfg)
	if Verbose {
		r.Detail = FormatDetail(items, r.Sets)
		fmt.Fprint(os.Stderr, r.Detail)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(r)
		return
	}
	if len(r.Sets) > 0 {
		fmt.Println(FormatGroups(r.Sets))
	}
}

const usage = `Usage: set-solver [flags] <items> [setSize] [variantCount] [itemCount]
       set-solver [flags] -input puzzle.json

Positional arguments:
  items           Digit string, variantCount digits per item
  setSize         Items per set (default 3)
  variantCount    Attributes per item (default 4)
  itemCount       Expected number of items (default 12)

Flags:
`

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func main() {
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Print set details and search progress to stderr")
	input := flag.String("input", "", "Read the puzzle from a JSON file instead of arguments")
	workers := flag.Int("workers", 1, "Number of goroutines splitting the search")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	Verbose = *verbose

	if *input != "" {
		p, err := LoadItemsFile(*input)
		if err != nil {
			fatal(err)
		}
		cfg := DefaultConfig()
		cfg.SetSize = p.SetSize
		cfg.VariantCount = p.VariantCount
		cfg.Workers = *workers
		fmt.Fprintf(os.Stderr, "Loaded %d items from %s\n", len(p.Items), *input)
		runPuzzle(p.Items, cfg, *jsonOut)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	itemString, cfg, err := ParseArgs(args)
	if err != nil {
		fatal(err)
	}
	cfg.Workers = *workers
	items, err := ParseItems(itemString, cfg)
	if err != nil {
		fatal(err)
	}
	runPuzzle(items, cfg, *jsonOut)
}
