package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadItemsFile reads a JSON puzzle document from path. Fields missing from
// the document take their values from DefaultConfig.
func LoadItemsFile(path string) (*Puzzle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := parsePuzzleJSON(string(raw), DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// parsePuzzleJSON decodes
//
//	{"setSize":3,"variantCount":4,"itemCount":12,"items": ...}
//
// where items is a flat digit string, an array of digit strings, or an array
// of token arrays.
func parsePuzzleJSON(raw string, cfg Config) (*Puzzle, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON")
	}
	doc := gjson.Parse(raw)
	if v := doc.Get("setSize"); v.Exists() {
		cfg.SetSize = int(v.Int())
	}
	if v := doc.Get("variantCount"); v.Exists() {
		cfg.VariantCount = int(v.Int())
	}
	if v := doc.Get("itemCount"); v.Exists() {
		cfg.ItemCount = int(v.Int())
	}

	itemsJSON := doc.Get("items")
	switch {
	case !itemsJSON.Exists():
		return nil, ErrMissingItems
	case itemsJSON.Type == gjson.String:
		digits, err := ParseItems(itemsJSON.String(), cfg)
		if err != nil {
			return nil, err
		}
		return &Puzzle{Items: digitsToTokens(digits), SetSize: cfg.SetSize, VariantCount: cfg.VariantCount}, nil
	case !itemsJSON.IsArray():
		return nil, fmt.Errorf("items: expected string or array, got %s", itemsJSON.Type)
	}
	if cfg.SetSize < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrSetSize, cfg.SetSize)
	}
	if cfg.VariantCount < 1 {
		return nil, fmt.Errorf("%w: variant count %d", ErrVariantCount, cfg.VariantCount)
	}

	var items []Item[string]
	var perr error
	itemsJSON.ForEach(func(_, v gjson.Result) bool {
		item := readTokens(v)
		if len(item) != cfg.VariantCount {
			perr = fmt.Errorf("%w: item %d has %d values, want %d",
				ErrVariantCount, len(items), len(item), cfg.VariantCount)
			return false
		}
		items = append(items, item)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	if len(items) == 0 {
		return nil, ErrMissingItems
	}
	return &Puzzle{Items: items, SetSize: cfg.SetSize, VariantCount: cfg.VariantCount}, nil
}

// readTokens turns one item into its values. A string is split per
// character; an array yields one value per element.
func readTokens(v gjson.Result) Item[string] {
	if v.IsArray() {
		var out Item[string]
		v.ForEach(func(_, e gjson.Result) bool {
			out = append(out, e.String())
			return true
		})
		return out
	}
	s := v.String()
	out := make(Item[string], 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func digitsToTokens(items []Item[uint8]) []Item[string] {
	out := make([]Item[string], len(items))
	for i, it := range items {
		tok := make(Item[string], len(it))
		for v, d := range it {
			tok[v] = string(rune('0' + d))
		}
		out[i] = tok
	}
	return out
}
