package uniswapv4

import (
	"context"
	"math/big"
)

// PositionManager is the surface of the pool/position manager the launcher
// needs. Implementations are injected so tests can substitute a double for a
// live deployment.
type PositionManager interface {
	// InitializePool creates the pool at the given sqrt price. It must fail
	// when the pool already exists.
	InitializePool(ctx context.Context, key PoolKey, sqrtPriceX96 *big.Int) error

	// ModifyLiquidities executes an encoded batch of position operations
	// atomically. value carries native currency when one side of the pair is
	// the native asset.
	ModifyLiquidities(ctx context.Context, unlockData []byte, deadline *big.Int, value *big.Int) error
}
