package math

import (
	"errors"
	"math/big"
)

var ErrTickOutOfBounds = errors.New("tick out of bounds")

// sqrt(1.0001^-(2^i)) in Q128, i = 0..19.
var tickRatios = [20]*big.Int{
	mustHex("fffcb933bd6fad37aa2d162d1a594001"),
	mustHex("fff97272373d413259a46990580e213a"),
	mustHex("fff2e50f5f656932ef12357cf3c7fdcc"),
	mustHex("ffe5caca7e10e4e61c3624eaa0941cd0"),
	mustHex("ffcb9843d60f6159c9db58835c926644"),
	mustHex("ff973b41fa98c081472e6896dfb254c0"),
	mustHex("ff2ea16466c96a3843ec78b326b52861"),
	mustHex("fe5dee046a99a2a811c461f1969c3053"),
	mustHex("fcbe86c7900a88aedcffc83b479aa3a4"),
	mustHex("f987a7253ac413176f2b074cf7815e54"),
	mustHex("f3392b0822b70005940c7a398e4b70f3"),
	mustHex("e7159475a2c29b7443b29c7fa6e889d9"),
	mustHex("d097f3bdfd2022b8845ad8f792aa5825"),
	mustHex("a9f746462d870fdf8a65dc1f90e061e5"),
	mustHex("70d869a156d2a1b890bb3df62baf32f7"),
	mustHex("31be135f97d08fd981231505542fcfa6"),
	mustHex("9aa508b5b7a84e1c677de54f3e99bc9"),
	mustHex("5d6af8dedb81196699c329225ee604"),
	mustHex("2216e584f5fa1ea926041bedfe98"),
	mustHex("48a170391f7dc42444e8fa2"),
}

var oneQ128 = new(big.Int).Lsh(big.NewInt(1), 128)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("math: invalid constant " + s)
	}
	return v
}

// SqrtPriceAtTick returns sqrt(1.0001^tick) * 2^96, computed with the pool
// manager's magic-constant ladder so results match on-chain values bit for bit.
func SqrtPriceAtTick(tick int32) (*big.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return nil, ErrTickOutOfBounds
	}
	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	ratio := new(big.Int)
	if absTick&1 != 0 {
		ratio.Set(tickRatios[0])
	} else {
		ratio.Set(oneQ128)
	}
	for i := 1; i < len(tickRatios); i++ {
		if absTick&(1<<i) != 0 {
			ratio.Mul(ratio, tickRatios[i])
			ratio.Rsh(ratio, 128)
		}
	}
	if tick > 0 {
		ratio.Div(MaxUint256, ratio)
	}

	// Q128 to Q96, rounding up.
	rem := new(big.Int).And(ratio, big.NewInt((1<<32)-1))
	ratio.Rsh(ratio, 32)
	if rem.Sign() != 0 {
		ratio.Add(ratio, big.NewInt(1))
	}
	return ratio, nil
}

// TickAtSqrtPrice returns the largest tick whose sqrt price is less than or
// equal to sqrtPriceX96. Binary search over SqrtPriceAtTick keeps the two
// directions consistent by construction.
func TickAtSqrtPrice(sqrtPriceX96 *big.Int) (int32, error) {
	if sqrtPriceX96 == nil || sqrtPriceX96.Cmp(MinSqrtPrice) < 0 || sqrtPriceX96.Cmp(MaxSqrtPrice) > 0 {
		return 0, ErrSqrtPriceOutOfBounds
	}
	low, high := MinTick, MaxTick
	for low < high {
		mid := low + (high-low+1)/2
		sqrtPriceMid, err := SqrtPriceAtTick(mid)
		if err != nil {
			return 0, err
		}
		if sqrtPriceMid.Cmp(sqrtPriceX96) <= 0 {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low, nil
}

// MinUsableTick returns the lowest tick aligned to the given spacing.
func MinUsableTick(tickSpacing int32) int32 {
	return (MinTick / tickSpacing) * tickSpacing
}

// MaxUsableTick returns the highest tick aligned to the given spacing.
func MaxUsableTick(tickSpacing int32) int32 {
	return (MaxTick / tickSpacing) * tickSpacing
}

// FloorToSpacing rounds tick toward negative infinity to a multiple of spacing.
func FloorToSpacing(tick, tickSpacing int32) int32 {
	floored := tick / tickSpacing
	if tick < 0 && tick%tickSpacing != 0 {
		floored--
	}
	return floored * tickSpacing
}

// CeilToSpacing rounds tick toward positive infinity to a multiple of spacing.
func CeilToSpacing(tick, tickSpacing int32) int32 {
	ceiled := tick / tickSpacing
	if tick > 0 && tick%tickSpacing != 0 {
		ceiled++
	}
	return ceiled * tickSpacing
}

// MaxLiquidityPerTick returns the pool manager's per-tick liquidity ceiling
// for the given spacing.
func MaxLiquidityPerTick(tickSpacing int32) *big.Int {
	numTicks := int64((MaxUsableTick(tickSpacing)-MinUsableTick(tickSpacing))/tickSpacing) + 1
	return new(big.Int).Div(MaxUint128, big.NewInt(numTicks))
}
