// Package region provides the regional risk multiplier table used by the
// growth-stage valuation model. The table is loaded once at construction
// and read-only afterwards, so concurrent lookups need no locking.
package region

import (
	"sort"
	"strings"
)

// DefaultMultiplier is applied when a region key is not in the table.
// Unknown regions resolve at lookup time, not at load time.
const DefaultMultiplier = 0.8

// defaultMultipliers is the compiled-in fallback used when no external
// source can be loaded. Load failures are intentionally non-fatal.
var defaultMultipliers = map[string]float64{
	"north_america": 1.0,
	"europe":        0.9,
	"asia_pacific":  0.85,
	"latin_america": 0.8,
	"africa":        0.75,
}

// Table maps lowercased region keys to risk multipliers in [0,1].
type Table struct {
	multipliers map[string]float64
}

// Default returns a table backed by the compiled-in multipliers.
func Default() *Table {
	return NewTable(defaultMultipliers)
}

// NewTable builds a table from raw multipliers. Keys are normalized to
// lowercase and entries with multipliers outside [0,1] are dropped.
func NewTable(raw map[string]float64) *Table {
	multipliers := make(map[string]float64, len(raw))
	for key, mult := range raw {
		if mult < 0 || mult > 1 {
			continue
		}
		multipliers[normalizeKey(key)] = mult
	}
	return &Table{multipliers: multipliers}
}

// Lookup returns the multiplier for a region, or DefaultMultiplier when
// the region is unknown.
func (t *Table) Lookup(region string) float64 {
	if mult, ok := t.multipliers[normalizeKey(region)]; ok {
		return mult
	}
	return DefaultMultiplier
}

// Len returns the number of regions in the table.
func (t *Table) Len() int {
	return len(t.multipliers)
}

// Regions returns the known region keys in sorted order.
func (t *Table) Regions() []string {
	keys := make([]string, 0, len(t.multipliers))
	for key := range t.multipliers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// normalizeKey lowercases and underscores a region name so that
// "North America" and "north_america" resolve identically.
func normalizeKey(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	return strings.ReplaceAll(key, " ", "_")
}
