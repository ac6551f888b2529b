package math

import "math/big"

// LiquidityForAmount0 computes the liquidity supported by amount0 over the
// price range [sqrtPriceAX96, sqrtPriceBX96].
func LiquidityForAmount0(sqrtPriceAX96, sqrtPriceBX96, amount0 *big.Int) *big.Int {
	if sqrtPriceAX96.Cmp(sqrtPriceBX96) > 0 {
		sqrtPriceAX96, sqrtPriceBX96 = sqrtPriceBX96, sqrtPriceAX96
	}
	intermediate := MulDiv(sqrtPriceAX96, sqrtPriceBX96, Q96, RoundingDown)
	return MulDiv(amount0, intermediate, new(big.Int).Sub(sqrtPriceBX96, sqrtPriceAX96), RoundingDown)
}

// LiquidityForAmount1 computes the liquidity supported by amount1 over the
// price range [sqrtPriceAX96, sqrtPriceBX96].
func LiquidityForAmount1(sqrtPriceAX96, sqrtPriceBX96, amount1 *big.Int) *big.Int {
	if sqrtPriceAX96.Cmp(sqrtPriceBX96) > 0 {
		sqrtPriceAX96, sqrtPriceBX96 = sqrtPriceBX96, sqrtPriceAX96
	}
	return MulDiv(amount1, Q96, new(big.Int).Sub(sqrtPriceBX96, sqrtPriceAX96), RoundingDown)
}

// LiquidityForAmounts returns the maximal liquidity supportable by both
// amounts at the current price without exceeding either. When the current
// price sits outside the range only the in-range asset contributes.
func LiquidityForAmounts(sqrtPriceX96, sqrtPriceAX96, sqrtPriceBX96, amount0, amount1 *big.Int) *big.Int {
	if sqrtPriceAX96.Cmp(sqrtPriceBX96) > 0 {
		sqrtPriceAX96, sqrtPriceBX96 = sqrtPriceBX96, sqrtPriceAX96
	}
	switch {
	case sqrtPriceX96.Cmp(sqrtPriceAX96) <= 0:
		return LiquidityForAmount0(sqrtPriceAX96, sqrtPriceBX96, amount0)
	case sqrtPriceX96.Cmp(sqrtPriceBX96) < 0:
		liquidity0 := LiquidityForAmount0(sqrtPriceX96, sqrtPriceBX96, amount0)
		liquidity1 := LiquidityForAmount1(sqrtPriceAX96, sqrtPriceX96, amount1)
		if liquidity0.Cmp(liquidity1) < 0 {
			return liquidity0
		}
		return liquidity1
	default:
		return LiquidityForAmount1(sqrtPriceAX96, sqrtPriceBX96, amount1)
	}
}
