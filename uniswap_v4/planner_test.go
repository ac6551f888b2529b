package uniswapv4

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v4math "github.com/openlaunch/cca-go/uniswap_v4/math"
)

func testBase(t *testing.T, sqrtPriceX96 *big.Int) BasePositionParams {
	t.Helper()
	key, _ := NewPoolKey(
		common.HexToAddress("0x1000000000000000000000000000000000000001"),
		common.HexToAddress("0x2000000000000000000000000000000000000002"),
		3000, 60, common.Address{},
	)
	return BasePositionParams{
		PoolKey:      key,
		SqrtPriceX96: sqrtPriceX96,
		Liquidity:    big.NewInt(1_000_000),
		Recipient:    common.HexToAddress("0x3000000000000000000000000000000000000003"),
	}
}

func TestSortCurrencies(t *testing.T) {
	a := common.HexToAddress("0x0000000000000000000000000000000000000001")
	b := common.HexToAddress("0x0000000000000000000000000000000000000002")
	c0, c1 := SortCurrencies(b, a)
	assert.Equal(t, a, c0)
	assert.Equal(t, b, c1)

	key, currencyIsCurrency0 := NewPoolKey(a, b, 500, 10, common.Address{})
	assert.True(t, currencyIsCurrency0)
	assert.Equal(t, a, key.Currency0)

	_, currencyIsCurrency0 = NewPoolKey(b, a, 500, 10, common.Address{})
	assert.False(t, currencyIsCurrency0)
}

func TestPlannerFullRangeOnly(t *testing.T) {
	p := NewPlanner(testBase(t, new(big.Int).Set(v4math.Q96)))
	require.NoError(t, p.MintFullRange(big.NewInt(1_000_000), big.NewInt(500), big.NewInt(500)))

	planned, err := p.MintOneSided(nil, nil)
	require.NoError(t, err)
	assert.False(t, planned)

	sweep := common.HexToAddress("0x4000000000000000000000000000000000000004")
	require.NoError(t, p.Finish(sweep))

	plan, err := p.Plan()
	require.NoError(t, err)
	assert.Equal(t, []byte{ActionMintPosition, ActionSettlePair, ActionTakePair}, plan.Actions())
	assert.Len(t, plan.Params(), 3)
}

func TestPlannerOneSided(t *testing.T) {
	t.Run("currency0 surplus goes above price", func(t *testing.T) {
		p := NewPlanner(testBase(t, new(big.Int).Set(v4math.Q96)))
		require.NoError(t, p.MintFullRange(big.NewInt(1_000_000), big.NewInt(500), big.NewInt(500)))

		planned, err := p.MintOneSided(big.NewInt(1_000_000), nil)
		require.NoError(t, err)
		assert.True(t, planned)

		require.NoError(t, p.Finish(common.Address{}))
		plan, err := p.Plan()
		require.NoError(t, err)
		assert.Equal(t, []byte{ActionMintPosition, ActionMintPosition, ActionSettlePair, ActionTakePair}, plan.Actions())
	})

	t.Run("currency1 surplus goes below price", func(t *testing.T) {
		p := NewPlanner(testBase(t, new(big.Int).Set(v4math.Q96)))
		require.NoError(t, p.MintFullRange(big.NewInt(1_000_000), big.NewInt(500), big.NewInt(500)))

		planned, err := p.MintOneSided(nil, big.NewInt(1_000_000))
		require.NoError(t, err)
		assert.True(t, planned)

		require.NoError(t, p.Finish(common.Address{}))
		plan, err := p.Plan()
		require.NoError(t, err)
		assert.Len(t, plan.Ops, 4)
	})
}

func TestPlannerOneSidedFallback(t *testing.T) {
	mint := func(p *Planner) {
		require.NoError(t, p.MintFullRange(big.NewInt(1_000_000), big.NewInt(500), big.NewInt(500)))
	}

	t.Run("window collapses against max tick", func(t *testing.T) {
		nearMax, err := v4math.SqrtPriceAtTick(v4math.MaxUsableTick(60) - 30)
		require.NoError(t, err)
		p := NewPlanner(testBase(t, nearMax))
		mint(p)
		planned, err := p.MintOneSided(big.NewInt(1_000_000), nil)
		require.NoError(t, err)
		assert.False(t, planned)

		require.NoError(t, p.Finish(common.Address{}))
		plan, err := p.Plan()
		require.NoError(t, err)
		assert.Len(t, plan.Ops, 3)
	})

	t.Run("window collapses against min tick", func(t *testing.T) {
		nearMin, err := v4math.SqrtPriceAtTick(v4math.MinUsableTick(60) + 30)
		require.NoError(t, err)
		p := NewPlanner(testBase(t, nearMin))
		mint(p)
		planned, err := p.MintOneSided(nil, big.NewInt(1_000_000))
		require.NoError(t, err)
		assert.False(t, planned)
		require.NoError(t, p.Finish(common.Address{}))
	})

	t.Run("per-tick ceiling counts the full-range liquidity", func(t *testing.T) {
		base := testBase(t, new(big.Int).Set(v4math.Q96))
		base.Liquidity = v4math.MaxLiquidityPerTick(60)
		p := NewPlanner(base)
		require.NoError(t, p.MintFullRange(base.Liquidity, big.NewInt(500), big.NewInt(500)))

		planned, err := p.MintOneSided(big.NewInt(1_000_000_000), nil)
		require.NoError(t, err)
		assert.False(t, planned)

		require.NoError(t, p.Finish(common.Address{}))
		plan, err := p.Plan()
		require.NoError(t, err)
		assert.Len(t, plan.Ops, 3)
	})

	t.Run("dust surplus rounds to zero liquidity", func(t *testing.T) {
		high, err := v4math.SqrtPriceAtTick(300000)
		require.NoError(t, err)
		p := NewPlanner(testBase(t, high))
		mint(p)
		// One unit of currency1 against a range this wide supports no
		// liquidity at all.
		planned, err := p.MintOneSided(nil, big.NewInt(1))
		require.NoError(t, err)
		assert.False(t, planned)
	})
}

func TestPlannerOrdering(t *testing.T) {
	p := NewPlanner(testBase(t, new(big.Int).Set(v4math.Q96)))

	assert.ErrorIs(t, p.Finish(common.Address{}), ErrPlanOutOfOrder)
	_, err := p.MintOneSided(big.NewInt(1), nil)
	assert.ErrorIs(t, err, ErrPlanOutOfOrder)
	_, err = p.Plan()
	assert.ErrorIs(t, err, ErrPlanOutOfOrder)

	require.NoError(t, p.MintFullRange(big.NewInt(1), big.NewInt(1), big.NewInt(1)))
	assert.ErrorIs(t, p.MintFullRange(big.NewInt(1), big.NewInt(1), big.NewInt(1)), ErrPlanOutOfOrder)
}

func TestPlanEncode(t *testing.T) {
	p := NewPlanner(testBase(t, new(big.Int).Set(v4math.Q96)))
	require.NoError(t, p.MintFullRange(big.NewInt(1_000_000), big.NewInt(500), big.NewInt(500)))
	_, err := p.MintOneSided(big.NewInt(1_000_000), nil)
	require.NoError(t, err)
	require.NoError(t, p.Finish(common.Address{}))

	plan, err := p.Plan()
	require.NoError(t, err)
	require.Equal(t, len(plan.Actions()), len(plan.Params()))

	data, err := plan.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := unlockArgs.Unpack(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, plan.Actions(), decoded[0].([]byte))
	assert.Len(t, decoded[1].([][]byte), len(plan.Ops))
}
