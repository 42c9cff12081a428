package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		items, cfg, err := ParseArgs([]string{classicItems})
		require.NoError(t, err)
		assert.Equal(t, classicItems, items)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		_, cfg, err := ParseArgs([]string{"012", "2", "1", "3"})
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.SetSize)
		assert.Equal(t, 1, cfg.VariantCount)
		assert.Equal(t, 3, cfg.ItemCount)
	})

	t.Run("partial overrides", func(t *testing.T) {
		_, cfg, err := ParseArgs([]string{"0123", "4"})
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.SetSize)
		assert.Equal(t, 4, cfg.VariantCount)
		assert.Equal(t, 12, cfg.ItemCount)
	})

	t.Run("missing items", func(t *testing.T) {
		_, _, err := ParseArgs(nil)
		assert.ErrorIs(t, err, ErrMissingItems)
	})

	t.Run("bad number", func(t *testing.T) {
		_, _, err := ParseArgs([]string{classicItems, "3", "four"})
		require.ErrorIs(t, err, ErrInvalidNumber)
		assert.Contains(t, err.Error(), "variantCount")
	})
}

func TestParseItems(t *testing.T) {
	items, err := ParseItems(classicItems, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, Item[uint8]{1, 0, 0, 0}, items[0])
	assert.Equal(t, Item[uint8]{1, 0, 2, 0}, items[1])
	assert.Equal(t, Item[uint8]{2, 2, 0, 1}, items[11])

	cfg := Config{SetSize: 3, VariantCount: 2, ItemCount: 4}
	items, err = ParseItems("01234567", cfg)
	require.NoError(t, err)
	assert.Equal(t, []Item[uint8]{{0, 1}, {2, 3}, {4, 5}, {6, 7}}, items)
}

func TestParseItemsErrors(t *testing.T) {
	withCfg := func(mod func(*Config)) Config {
		cfg := DefaultConfig()
		mod(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		items   string
		cfg     Config
		wantErr error
	}{
		{"empty", "", DefaultConfig(), ErrMissingItems},
		{"item count", classicItems, withCfg(func(c *Config) { c.ItemCount = 5 }), ErrItemCount},
		{"zero item count", classicItems, withCfg(func(c *Config) { c.ItemCount = 0 }), ErrItemCount},
		{"variant count", classicItems, withCfg(func(c *Config) { c.VariantCount = 5 }), ErrVariantCount},
		{"zero variant count", classicItems, withCfg(func(c *Config) { c.VariantCount = 0 }), ErrVariantCount},
		{"zero set size", classicItems, withCfg(func(c *Config) { c.SetSize = 0 }), ErrSetSize},
		{"non digit", strings.Replace(classicItems, "2", "x", 1), DefaultConfig(), ErrNonDigit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItems(tt.items, tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
