package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// ShareKeyPrefix is the prefix for liquidity share store keys
	ShareKeyPrefix = []byte{0x02}

	// FeeStatsKeyPrefix is the prefix for dynamic fee statistics keys
	FeeStatsKeyPrefix = []byte{0x03}

	// PoolByDenomsKeyPrefix is the prefix for indexing pools by denom pair
	PoolByDenomsKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}
)

// PoolKey returns the store key for a pool by seed
func PoolKey(seed uint64) []byte {
	seedBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seedBytes, seed)
	return append(PoolKeyPrefix, seedBytes...)
}

// ShareKey returns the store key for a provider's shares in a pool
func ShareKey(seed uint64, provider sdk.AccAddress) []byte {
	seedBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seedBytes, seed)
	key := append(ShareKeyPrefix, seedBytes...)
	key = append(key, provider.Bytes()...)
	return key
}

// ShareKeyByPoolPrefix returns the prefix for all share balances in a pool
func ShareKeyByPoolPrefix(seed uint64) []byte {
	seedBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seedBytes, seed)
	return append(ShareKeyPrefix, seedBytes...)
}

// FeeStatsKey returns the store key for a denom's dynamic fee statistics
func FeeStatsKey(denom string) []byte {
	return append(FeeStatsKeyPrefix, []byte(denom)...)
}

// PoolByDenomsKey returns the store key for indexing a pool by its denom pair
func PoolByDenomsKey(denomA, denomB string) []byte {
	// Ensure consistent ordering: denomA < denomB lexicographically
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	key := append(PoolByDenomsKeyPrefix, []byte(denomA)...)
	key = append(key, []byte("/")...)
	key = append(key, []byte(denomB)...)
	return key
}
