package main

// Config holds the per-run search parameters.
type Config struct {
	// SetSize is the number of items in each group.
	SetSize int
	// VariantCount is the number of attributes per item.
	VariantCount int
	// ItemCount is the expected number of items. Only used to check the input length.
	ItemCount int
	// Workers is the number of goroutines splitting the search. 1 runs it sequentially.
	Workers int
}

// DefaultConfig returns the parameters of the classic 12-card, 4-attribute game.
func DefaultConfig() Config {
	return Config{
		SetSize:      3,
		VariantCount: 4,
		ItemCount:    12,
		Workers:      1,
	}
}

// Verbose controls whether detailed search progress is printed to stderr.
var Verbose bool
