package math

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtPriceAtTick(t *testing.T) {
	t.Run("tick zero is unit price", func(t *testing.T) {
		out, err := SqrtPriceAtTick(0)
		require.NoError(t, err)
		assert.Zero(t, out.Cmp(Q96))
	})

	t.Run("bounds match the admissible range", func(t *testing.T) {
		low, err := SqrtPriceAtTick(MinTick)
		require.NoError(t, err)
		assert.Zero(t, low.Cmp(MinSqrtPrice))

		high, err := SqrtPriceAtTick(MaxTick)
		require.NoError(t, err)
		assert.Zero(t, high.Cmp(MaxSqrtPrice))
	})

	t.Run("strictly increasing", func(t *testing.T) {
		ticks := []int32{MinTick, -500000, -100000, -60, -1, 0, 1, 60, 100000, 500000, MaxTick}
		var prev *big.Int
		for _, tick := range ticks {
			out, err := SqrtPriceAtTick(tick)
			require.NoError(t, err)
			if prev != nil {
				assert.Positive(t, out.Cmp(prev), "tick %d", tick)
			}
			prev = out
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := SqrtPriceAtTick(MinTick - 1)
		assert.ErrorIs(t, err, ErrTickOutOfBounds)
		_, err = SqrtPriceAtTick(MaxTick + 1)
		assert.ErrorIs(t, err, ErrTickOutOfBounds)
	})
}

func TestTickAtSqrtPrice(t *testing.T) {
	t.Run("inverse of SqrtPriceAtTick", func(t *testing.T) {
		for _, tick := range []int32{MinTick, -123456, -60, -1, 0, 1, 60, 123456, MaxTick} {
			sqrtPrice, err := SqrtPriceAtTick(tick)
			require.NoError(t, err)
			got, err := TickAtSqrtPrice(sqrtPrice)
			require.NoError(t, err)
			assert.Equal(t, tick, got)
		}
	})

	t.Run("floors between ticks", func(t *testing.T) {
		sqrtPrice, err := SqrtPriceAtTick(100)
		require.NoError(t, err)
		got, err := TickAtSqrtPrice(new(big.Int).Add(sqrtPrice, big.NewInt(1)))
		require.NoError(t, err)
		assert.Equal(t, int32(100), got)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := TickAtSqrtPrice(big.NewInt(1))
		assert.ErrorIs(t, err, ErrSqrtPriceOutOfBounds)
		_, err = TickAtSqrtPrice(new(big.Int).Add(MaxSqrtPrice, big.NewInt(1)))
		assert.ErrorIs(t, err, ErrSqrtPriceOutOfBounds)
	})
}

func TestUsableTicks(t *testing.T) {
	assert.Equal(t, int32(-887220), MinUsableTick(60))
	assert.Equal(t, int32(887220), MaxUsableTick(60))
	assert.Equal(t, MinTick, MinUsableTick(1))
	assert.Equal(t, MaxTick, MaxUsableTick(1))
}

func TestTickSpacingRounding(t *testing.T) {
	assert.Equal(t, int32(120), FloorToSpacing(125, 60))
	assert.Equal(t, int32(-180), FloorToSpacing(-125, 60))
	assert.Equal(t, int32(120), FloorToSpacing(120, 60))
	assert.Equal(t, int32(180), CeilToSpacing(125, 60))
	assert.Equal(t, int32(-120), CeilToSpacing(-125, 60))
	assert.Equal(t, int32(120), CeilToSpacing(120, 60))
}

func TestMaxLiquidityPerTick(t *testing.T) {
	cap60 := MaxLiquidityPerTick(60)
	assert.Positive(t, cap60.Sign())
	assert.Negative(t, cap60.Cmp(MaxUint128))

	// Finer spacing means more ticks, so a smaller per-tick ceiling.
	cap1 := MaxLiquidityPerTick(1)
	assert.Negative(t, cap1.Cmp(cap60))
}
