package region

import (
	"context"
	"fmt"
	"os"

	"startup_valuation/pkg/core/store"
	"startup_valuation/pkg/core/utils"
)

// LoadConfig selects the external sources the loader may try. Zero-value
// fields disable their source.
type LoadConfig struct {
	// FilePath points at a local JSON (or Hjson) file of
	// region -> multiplier entries.
	FilePath string
	// SourceURL points at an HTTP source serving either a JSON body or an
	// HTML page with a region/multiplier table.
	SourceURL string
	// UseDB enables the Postgres source (requires store.InitDB to have
	// succeeded).
	UseDB bool
}

// Load builds the risk table from the first source that yields at least
// one valid entry, trying Postgres, then the local file, then the HTTP
// source. Every failure falls through with a warning; the compiled-in
// defaults guarantee Load never fails startup. The load happens once, at
// construction, and is not retried.
func Load(ctx context.Context, cfg LoadConfig) *Table {
	if cfg.UseDB {
		if raw, err := store.NewRegionRepo().LoadMultipliers(ctx); err == nil {
			if table := NewTable(raw); table.Len() > 0 {
				fmt.Printf("[REGION] Loaded %d region multipliers from database\n", table.Len())
				return table
			}
			fmt.Println("[WARNING] Database region data had no valid entries")
		} else {
			fmt.Printf("[WARNING] Database region load failed: %v\n", err)
		}
	}

	if cfg.FilePath != "" {
		if raw, err := loadFile(cfg.FilePath); err == nil {
			if table := NewTable(raw); table.Len() > 0 {
				fmt.Printf("[REGION] Loaded %d region multipliers from %s\n", table.Len(), cfg.FilePath)
				return table
			}
			fmt.Printf("[WARNING] Region file %s had no valid entries\n", cfg.FilePath)
		} else {
			fmt.Printf("[WARNING] Region file load failed: %v\n", err)
		}
	}

	if cfg.SourceURL != "" {
		if raw, err := FetchFromURL(ctx, cfg.SourceURL); err == nil {
			if table := NewTable(raw); table.Len() > 0 {
				fmt.Printf("[REGION] Loaded %d region multipliers from %s\n", table.Len(), cfg.SourceURL)
				return table
			}
			fmt.Printf("[WARNING] Region source %s had no valid entries\n", cfg.SourceURL)
		} else {
			fmt.Printf("[WARNING] Region source fetch failed: %v\n", err)
		}
	}

	fmt.Println("[REGION] Falling back to default region multipliers")
	return Default()
}

// loadFile reads and tolerantly parses a region multiplier file. The
// parse chain (strict JSON, then repair, then Hjson) keeps hand-edited
// files with comments or trailing commas loadable.
func loadFile(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseMultipliers(string(data))
}

func parseMultipliers(body string) (map[string]float64, error) {
	var raw map[string]float64
	if err := utils.SmartParse(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
