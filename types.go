package main

// Item is one card: a fixed-length sequence of attribute values (variants).
// Values are compared for equality only.
type Item[T comparable] []T

// Group is a candidate set, expressed as strictly increasing item indices.
type Group []int

// Puzzle is a decoded JSON puzzle document.
type Puzzle struct {
	Items        []Item[string]
	SetSize      int
	VariantCount int
}

// SolveResult is the JSON-serializable result of one search run.
type SolveResult struct {
	Sets       []Group `json:"sets"`
	Count      int     `json:"count"`
	Candidates int     `json:"candidates"`
	TimeMs     int64   `json:"timeMs"`
	Detail     string  `json:"detail,omitempty"`
}
