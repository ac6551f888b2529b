package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidityForAmounts(t *testing.T) {
	sqrtLower, err := SqrtPriceAtTick(-600)
	require.NoError(t, err)
	sqrtUpper, err := SqrtPriceAtTick(600)
	require.NoError(t, err)
	amount := big.NewInt(1_000_000)

	t.Run("in range takes the smaller side", func(t *testing.T) {
		liquidity := LiquidityForAmounts(Q96, sqrtLower, sqrtUpper, amount, amount)
		liquidity0 := LiquidityForAmount0(Q96, sqrtUpper, amount)
		liquidity1 := LiquidityForAmount1(sqrtLower, Q96, amount)
		require.Positive(t, liquidity.Sign())
		if liquidity0.Cmp(liquidity1) < 0 {
			assert.Zero(t, liquidity.Cmp(liquidity0))
		} else {
			assert.Zero(t, liquidity.Cmp(liquidity1))
		}
	})

	t.Run("price below range uses amount0 only", func(t *testing.T) {
		below, err := SqrtPriceAtTick(-1200)
		require.NoError(t, err)
		liquidity := LiquidityForAmounts(below, sqrtLower, sqrtUpper, amount, big.NewInt(0))
		assert.Zero(t, liquidity.Cmp(LiquidityForAmount0(sqrtLower, sqrtUpper, amount)))
		assert.Positive(t, liquidity.Sign())
	})

	t.Run("price above range uses amount1 only", func(t *testing.T) {
		above, err := SqrtPriceAtTick(1200)
		require.NoError(t, err)
		liquidity := LiquidityForAmounts(above, sqrtLower, sqrtUpper, big.NewInt(0), amount)
		assert.Zero(t, liquidity.Cmp(LiquidityForAmount1(sqrtLower, sqrtUpper, amount)))
		assert.Positive(t, liquidity.Sign())
	})

	t.Run("zero amounts give zero liquidity", func(t *testing.T) {
		liquidity := LiquidityForAmounts(Q96, sqrtLower, sqrtUpper, big.NewInt(0), big.NewInt(0))
		assert.Zero(t, liquidity.Sign())
	})

	t.Run("swapped bounds are normalized", func(t *testing.T) {
		a := LiquidityForAmounts(Q96, sqrtLower, sqrtUpper, amount, amount)
		b := LiquidityForAmounts(Q96, sqrtUpper, sqrtLower, amount, amount)
		assert.Zero(t, a.Cmp(b))
	})
}

func TestMulDiv(t *testing.T) {
	t.Run("rounding down", func(t *testing.T) {
		out := MulDiv(big.NewInt(10), big.NewInt(10), big.NewInt(3), RoundingDown)
		assert.Zero(t, out.Cmp(big.NewInt(33)))
	})

	t.Run("rounding up", func(t *testing.T) {
		out := MulDiv(big.NewInt(10), big.NewInt(10), big.NewInt(3), RoundingUp)
		assert.Zero(t, out.Cmp(big.NewInt(34)))
	})

	t.Run("exact division ignores rounding mode", func(t *testing.T) {
		out := MulDiv(big.NewInt(10), big.NewInt(9), big.NewInt(3), RoundingUp)
		assert.Zero(t, out.Cmp(big.NewInt(30)))
	})

	t.Run("full precision intermediate", func(t *testing.T) {
		// x*y overflows 256 bits; the quotient still comes out exact.
		x := new(big.Int).Lsh(big.NewInt(1), 200)
		out := MulDiv(x, x, x, RoundingDown)
		assert.Zero(t, out.Cmp(x))
	})

	t.Run("zero denominator", func(t *testing.T) {
		out := MulDiv(big.NewInt(10), big.NewInt(10), big.NewInt(0), RoundingDown)
		assert.Zero(t, out.Sign())
	})
}
