package types

// Event types for the AMM module
const (
	EventTypeInitializePool    = "initialize_pool"
	EventTypeDeposit           = "deposit"
	EventTypeWithdraw          = "withdraw"
	EventTypeSwap              = "swap"
	EventTypeLockPool          = "lock_pool"
	EventTypeUnlockPool        = "unlock_pool"
	EventTypeCollectFees       = "collect_fees"
	EventTypeUpdateTransferFee = "update_transfer_fee_config"
	EventTypeUpdateDestination = "update_fee_destination"
	EventTypeUpdateHookProgram = "update_hook_program"
	EventTypeDynamicFeeUpdate  = "dynamic_fee_update"
)

// Event attribute keys
const (
	AttributeKeySeed           = "seed"
	AttributeKeyDenomX         = "denom_x"
	AttributeKeyDenomY         = "denom_y"
	AttributeKeyDenomIn        = "denom_in"
	AttributeKeyDenomOut       = "denom_out"
	AttributeKeyAmountX        = "amount_x"
	AttributeKeyAmountY        = "amount_y"
	AttributeKeyAmountIn       = "amount_in"
	AttributeKeyAmountOut      = "amount_out"
	AttributeKeyShares         = "shares"
	AttributeKeyProvider       = "provider"
	AttributeKeyTrader         = "trader"
	AttributeKeyFeeBasisPoints = "fee_basis_points"
	AttributeKeyFeeDestination = "fee_destination"
	AttributeKeyHookProgram    = "hook_program"
	AttributeKeyCollected      = "collected"
	AttributeKeyDenom          = "denom"
)
