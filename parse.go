package main

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMissingItems  = errors.New("must input string representing items to solve")
	ErrInvalidNumber = errors.New("expected number")
	ErrItemCount     = errors.New("item string length is not a multiple of the item count")
	ErrVariantCount  = errors.New("items do not have equal amounts of variants")
	ErrNonDigit      = errors.New("expects all numeric characters in item string")
	ErrSetSize       = errors.New("set size must be at least 1")
)

// ParseArgs reads the positional arguments
//
//	<items> [setSize] [variantCount] [itemCount]
//
// falling back to DefaultConfig for omitted values.
func ParseArgs(args []string) (string, Config, error) {
	cfg := DefaultConfig()
	if len(args) == 0 || args[0] == "" {
		return "", cfg, ErrMissingItems
	}

	fields := []struct {
		name string
		dst  *int
	}{
		{"setSize", &cfg.SetSize},
		{"variantCount", &cfg.VariantCount},
		{"itemCount", &cfg.ItemCount},
	}
	for i, f := range fields {
		if len(args) <= i+1 {
			break
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			return "", cfg, fmt.Errorf("%w for %s, got %q", ErrInvalidNumber, f.name, args[i+1])
		}
		*f.dst = n
	}
	return args[0], cfg, nil
}

// ParseItems splits a flat digit string into items of cfg.VariantCount digits.
func ParseItems(itemString string, cfg Config) ([]Item[uint8], error) {
	if itemString == "" {
		return nil, ErrMissingItems
	}
	if cfg.SetSize < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrSetSize, cfg.SetSize)
	}
	if cfg.ItemCount < 1 || len(itemString)%cfg.ItemCount != 0 {
		return nil, fmt.Errorf("%w: length %d, item count %d", ErrItemCount, len(itemString), cfg.ItemCount)
	}
	if cfg.VariantCount < 1 || len(itemString)%cfg.VariantCount != 0 {
		return nil, fmt.Errorf("%w: length %d, variant count %d", ErrVariantCount, len(itemString), cfg.VariantCount)
	}

	digits := make([]uint8, len(itemString))
	for i := 0; i < len(itemString); i++ {
		c := itemString[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrNonDigit, c, i)
		}
		digits[i] = c - '0'
	}

	items := make([]Item[uint8], 0, len(digits)/cfg.VariantCount)
	for off := 0; off < len(digits); off += cfg.VariantCount {
		items = append(items, Item[uint8](digits[off:off+cfg.VariantCount]))
	}
	return items, nil
}
