package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the AMM module. Registered once at process start;
// promauto panics on duplicate registration, which keeps wiring mistakes loud.
var (
	poolsInitialized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "pools_initialized_total",
		Help:      "Total number of pools initialized",
	})

	depositsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "deposits_total",
		Help:      "Total number of liquidity deposits",
	})

	withdrawalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "withdrawals_total",
		Help:      "Total number of liquidity withdrawals",
	})

	swapsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "swaps_total",
		Help:      "Total number of swaps executed",
	})

	dynamicFeeGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "dynamic_fee_basis_points",
		Help:      "Current dynamic fee per denom in basis points",
	}, []string{"denom"})

	transfersRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "velocity_transfers_recorded_total",
		Help:      "Transfers folded into the velocity window per denom",
	}, []string{"denom"})

	feesCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loko",
		Subsystem: "amm",
		Name:      "withheld_fees_collected_total",
		Help:      "Withheld transfer fees swept to fee destinations",
	}, []string{"denom"})
)
