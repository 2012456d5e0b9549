package store

import (
	"context"
	"fmt"
)

// RegionRepo reads region risk multipliers from Postgres. It is one of
// the sources the region loader tries before falling back to the
// compiled-in defaults; the table is read once at startup.
type RegionRepo struct{}

// NewRegionRepo creates a new repository instance.
func NewRegionRepo() *RegionRepo {
	return &RegionRepo{}
}

// LoadMultipliers fetches all region -> multiplier rows.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS region_risk (
//	  region TEXT PRIMARY KEY,
//	  multiplier DOUBLE PRECISION NOT NULL
//	);
func (r *RegionRepo) LoadMultipliers(ctx context.Context) (map[string]float64, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `SELECT region, multiplier FROM region_risk`)
	if err != nil {
		return nil, fmt.Errorf("failed to query region_risk: %w", err)
	}
	defer rows.Close()

	multipliers := make(map[string]float64)
	for rows.Next() {
		var region string
		var mult float64
		if err := rows.Scan(&region, &mult); err != nil {
			return nil, fmt.Errorf("failed to scan region_risk row: %w", err)
		}
		multipliers[region] = mult
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read region_risk rows: %w", err)
	}

	if len(multipliers) == 0 {
		return nil, fmt.Errorf("region_risk table is empty")
	}

	return multipliers, nil
}
