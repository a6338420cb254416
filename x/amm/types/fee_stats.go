package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

const (
	// VelocityWindowSlots is the number of one-minute buckets in the
	// transfer-velocity ring buffer.
	VelocityWindowSlots = 6

	// VelocitySlotSeconds is the duration of a single velocity bucket.
	VelocitySlotSeconds = 60

	// DefaultBaseDynamicFeeBasisPoints is the resting dynamic fee (0.1%).
	DefaultBaseDynamicFeeBasisPoints = 10

	// DefaultMaxDynamicFeeBasisPoints is the dynamic fee ceiling (3.0%).
	DefaultMaxDynamicFeeBasisPoints = 300
)

// DynamicFeeStats tracks transfer velocity for one hook-enabled denom and
// derives the trading fee swaps use in place of the pool's static fee.
// One record exists per denom, shared by every pool referencing that denom,
// so all counter updates go through checked arithmetic.
type DynamicFeeStats struct {
	Denom                 string        `json:"denom"`
	TotalTransfers        uint64        `json:"total_transfers"`
	TotalVolume           sdkmath.Int   `json:"total_volume"`
	CurrentFeeBasisPoints uint32        `json:"current_fee_basis_points"`
	BaseFeeBasisPoints    uint32        `json:"base_fee_basis_points"`
	MaxFeeBasisPoints     uint32        `json:"max_fee_basis_points"`
	RecentTransfers       []uint64      `json:"recent_transfers"`
	RecentVolumes         []sdkmath.Int `json:"recent_volumes"`
	CurrentMinuteSlot     uint32        `json:"current_minute_slot"`
	LastUpdateTimestamp   int64         `json:"last_update_timestamp"`
	PeakTPS               uint32        `json:"peak_tps"`
	AvgTransferSize       sdkmath.Int   `json:"avg_transfer_size"`
}

// NewDynamicFeeStats seeds a fresh velocity record for a denom. The record is
// created lazily on the first transfer of a hook-enabled denom.
func NewDynamicFeeStats(denom string, baseBp, maxBp uint32, now int64) DynamicFeeStats {
	volumes := make([]sdkmath.Int, VelocityWindowSlots)
	for i := range volumes {
		volumes[i] = sdkmath.ZeroInt()
	}
	return DynamicFeeStats{
		Denom:                 denom,
		TotalVolume:           sdkmath.ZeroInt(),
		CurrentFeeBasisPoints: baseBp,
		BaseFeeBasisPoints:    baseBp,
		MaxFeeBasisPoints:     maxBp,
		RecentTransfers:       make([]uint64, VelocityWindowSlots),
		RecentVolumes:         volumes,
		CurrentMinuteSlot:     0,
		LastUpdateTimestamp:   now,
		AvgTransferSize:       sdkmath.ZeroInt(),
	}
}

// Validate checks structural invariants of a stats record.
func (s DynamicFeeStats) Validate() error {
	if s.Denom == "" {
		return ErrInvalidToken.Wrap("fee stats denom cannot be empty")
	}
	if len(s.RecentTransfers) != VelocityWindowSlots || len(s.RecentVolumes) != VelocityWindowSlots {
		return ErrInvalidPoolState.Wrapf("velocity ring must have %d slots", VelocityWindowSlots)
	}
	if s.CurrentMinuteSlot >= VelocityWindowSlots {
		return ErrInvalidPoolState.Wrapf("current minute slot %d out of range", s.CurrentMinuteSlot)
	}
	if s.BaseFeeBasisPoints == 0 || s.MaxFeeBasisPoints < s.BaseFeeBasisPoints {
		return ErrInvalidFee.Wrap("dynamic fee bounds are inconsistent")
	}
	if s.TotalVolume.IsNil() || s.TotalVolume.IsNegative() {
		return ErrInvalidAmount.Wrap("total volume must be non-negative")
	}
	return nil
}

// RecordTransfer folds one transfer into the velocity window and recomputes
// the dynamic fee. now is the block timestamp in unix seconds. Returns the fee
// in effect after this transfer.
//
// The fee moves toward the tiered target by at most BaseFeeBasisPoints per
// update in either direction; the flat step is intentional and kept from the
// reference controller even though it responds asymmetrically to large target
// jumps.
func (s *DynamicFeeStats) RecordTransfer(now int64, amount sdkmath.Int) (uint32, error) {
	if amount.IsNil() || amount.IsNegative() {
		return 0, ErrInvalidAmount.Wrap("transfer amount must be non-negative")
	}

	s.advanceWindow(now)

	slot := int(s.CurrentMinuteSlot)
	count, err := checkedAddUint64(s.RecentTransfers[slot], 1)
	if err != nil {
		return 0, err
	}
	s.RecentTransfers[slot] = count

	volume, err := checkedAddInt(s.RecentVolumes[slot], amount)
	if err != nil {
		return 0, err
	}
	s.RecentVolumes[slot] = volume

	// Running average over all transfers, folded in before the totals below
	// are bumped for this transfer.
	if s.TotalTransfers > 0 {
		weighted := new(big.Int).Mul(s.AvgTransferSize.BigInt(), new(big.Int).SetUint64(s.TotalTransfers))
		weighted.Add(weighted, amount.BigInt())
		weighted.Quo(weighted, new(big.Int).SetUint64(s.TotalTransfers+1))
		if weighted.BitLen() > maxIntBits {
			return 0, ErrMathOverflow.Wrap("average transfer size overflow")
		}
		s.AvgTransferSize = sdkmath.NewIntFromBigInt(weighted)
	} else {
		s.AvgTransferSize = amount
	}

	totalTPM := uint64(0)
	for _, n := range s.RecentTransfers {
		totalTPM, err = checkedAddUint64(totalTPM, n)
		if err != nil {
			return 0, err
		}
	}

	target := s.tieredFee(totalTPM)

	// Smooth the transition: at most one base-fee step per update.
	step := s.BaseFeeBasisPoints
	smoothed := s.CurrentFeeBasisPoints
	switch {
	case target > smoothed:
		smoothed = min(target, smoothed+step)
	case target < smoothed:
		if smoothed > step {
			smoothed = max(target, smoothed-step)
		} else {
			smoothed = target
		}
	}

	if tps := uint32(totalTPM / VelocitySlotSeconds); tps > s.PeakTPS {
		s.PeakTPS = tps
	}

	s.CurrentFeeBasisPoints = min(smoothed, s.MaxFeeBasisPoints)

	// Burst penalty: a transfer over 10x the running average pays 1.5x the
	// smoothed fee, still clamped to the ceiling.
	if s.AvgTransferSize.IsPositive() && amount.GT(s.AvgTransferSize.MulRaw(10)) {
		s.CurrentFeeBasisPoints = min(s.CurrentFeeBasisPoints*3/2, s.MaxFeeBasisPoints)
	}

	s.TotalTransfers, err = checkedAddUint64(s.TotalTransfers, 1)
	if err != nil {
		return 0, err
	}
	s.TotalVolume, err = checkedAddInt(s.TotalVolume, amount)
	if err != nil {
		return 0, err
	}

	return s.CurrentFeeBasisPoints, nil
}

// TotalTPM sums all six slots: transfers in the trailing window.
func (s DynamicFeeStats) TotalTPM() uint64 {
	var total uint64
	for _, n := range s.RecentTransfers {
		total += n
	}
	return total
}

// advanceWindow rotates the ring buffer for every full minute elapsed since
// the last update, zeroing each slot it passes. A silence of six minutes or
// more clears the entire window.
func (s *DynamicFeeStats) advanceWindow(now int64) {
	timeDiff := now - s.LastUpdateTimestamp
	if timeDiff < VelocitySlotSeconds {
		return
	}

	advance := timeDiff / VelocitySlotSeconds
	if advance > VelocityWindowSlots {
		advance = VelocityWindowSlots
	}
	for i := int64(0); i < advance; i++ {
		s.CurrentMinuteSlot = (s.CurrentMinuteSlot + 1) % VelocityWindowSlots
		s.RecentTransfers[s.CurrentMinuteSlot] = 0
		s.RecentVolumes[s.CurrentMinuteSlot] = sdkmath.ZeroInt()
	}
	s.LastUpdateTimestamp = now
}

// tieredFee maps transfers-per-window to the target fee.
func (s DynamicFeeStats) tieredFee(totalTPM uint64) uint32 {
	switch {
	case totalTPM <= 10:
		return s.BaseFeeBasisPoints
	case totalTPM <= 30:
		return s.BaseFeeBasisPoints * 2
	case totalTPM <= 60:
		return s.BaseFeeBasisPoints * 5
	case totalTPM <= 120:
		return s.BaseFeeBasisPoints * 12
	default:
		return s.MaxFeeBasisPoints
	}
}

// maxIntBits bounds sdkmath.Int values (256-bit two's complement).
const maxIntBits = 255

func checkedAddUint64(a, b uint64) (uint64, error) {
	if a > (1<<64-1)-b {
		return 0, ErrMathOverflow.Wrap("uint64 addition overflow")
	}
	return a + b, nil
}

func checkedAddInt(a, b sdkmath.Int) (sdkmath.Int, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if sum.BitLen() > maxIntBits {
		return sdkmath.Int{}, ErrMathOverflow.Wrap("integer addition overflow")
	}
	return sdkmath.NewIntFromBigInt(sum), nil
}
