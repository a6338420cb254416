package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// ShareRecord is a provider's liquidity share balance in a single pool.
type ShareRecord struct {
	Seed     uint64      `json:"seed"`
	Provider string      `json:"provider"`
	Shares   sdkmath.Int `json:"shares"`
}

// GenesisState is the full exported state of the AMM module.
type GenesisState struct {
	Params   Params            `json:"params"`
	Pools    []Pool            `json:"pools"`
	Shares   []ShareRecord     `json:"shares"`
	FeeStats []DynamicFeeStats `json:"fee_stats"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Pools:    []Pool{},
		Shares:   []ShareRecord{},
		FeeStats: []DynamicFeeStats{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seeds := make(map[uint64]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Seed, err)
		}
		if seeds[pool.Seed] {
			return fmt.Errorf("duplicate pool seed %d", pool.Seed)
		}
		seeds[pool.Seed] = true
	}

	shareTotals := make(map[uint64]sdkmath.Int, len(gs.Pools))
	for _, rec := range gs.Shares {
		if !seeds[rec.Seed] {
			return fmt.Errorf("share record references unknown pool seed %d", rec.Seed)
		}
		if strings.TrimSpace(rec.Provider) == "" {
			return fmt.Errorf("share record for pool %d missing provider address", rec.Seed)
		}
		if rec.Shares.IsNil() || !rec.Shares.IsPositive() {
			return fmt.Errorf("share record for pool %d must be positive", rec.Seed)
		}
		total, ok := shareTotals[rec.Seed]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		shareTotals[rec.Seed] = total.Add(rec.Shares)
	}
	for _, pool := range gs.Pools {
		total, ok := shareTotals[pool.Seed]
		if !ok {
			total = sdkmath.ZeroInt()
		}
		if !total.Equal(pool.ShareSupply) {
			return fmt.Errorf("pool %d share supply %s does not match share records total %s",
				pool.Seed, pool.ShareSupply, total)
		}
	}

	statDenoms := make(map[string]bool, len(gs.FeeStats))
	for _, stats := range gs.FeeStats {
		if err := stats.Validate(); err != nil {
			return fmt.Errorf("fee stats for %s: %w", stats.Denom, err)
		}
		if statDenoms[stats.Denom] {
			return fmt.Errorf("duplicate fee stats for denom %s", stats.Denom)
		}
		statDenoms[stats.Denom] = true
	}

	return nil
}
