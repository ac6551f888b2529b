package launcher

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	uniswapv4 "github.com/openlaunch/cca-go/uniswap_v4"
	v4math "github.com/openlaunch/cca-go/uniswap_v4/math"
)

// MigrationData is computed fresh on every migration attempt and never
// cached.
type MigrationData struct {
	SqrtPriceX96     *big.Int
	TokenAmount      *big.Int
	CurrencyAmount   *big.Int
	LeftoverCurrency *big.Int
	Liquidity        *big.Int
}

// MigrationResult reports a completed migration.
type MigrationResult struct {
	PoolKey      uniswapv4.PoolKey
	SqrtPriceX96 *big.Int
	Data         MigrationData
	Plan         uniswapv4.Plan
}

// Migrate moves the auction outcome for token into a pool position. It runs
// validation, price and amount preparation, pool initialization, plan
// construction and execution as one unit; any failure aborts the attempt with
// nothing applied.
func (l *Launcher) Migrate(ctx context.Context, token common.Address) (*MigrationResult, error) {
	l.mu.RLock()
	info, ok := l.auctions[token]
	migrated := ok && info.Migrated
	l.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownToken
	}
	if migrated {
		return nil, ErrAlreadyMigrated
	}

	// NotReady -> Validated.
	block, err := l.chain.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	if block < info.EndBlock+1 {
		return nil, fmt.Errorf("%w: block %d, auction ends at %d", ErrMigrationNotAllowed, block, info.EndBlock)
	}

	if err = info.Auction.SweepCurrency(ctx, l.address); err != nil {
		return nil, err
	}
	if err = info.Auction.Checkpoint(ctx); err != nil {
		return nil, err
	}
	raised, err := info.Auction.CurrencyRaised(ctx)
	if err != nil {
		return nil, err
	}
	if raised == nil || raised.Sign() == 0 {
		return nil, ErrNoCurrencyRaised
	}
	if raised.BitLen() > 128 {
		return nil, ErrCurrencyAmountTooHigh
	}
	balance, err := l.ledger.BalanceOf(ctx, info.Currency, l.address)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(raised) < 0 {
		return nil, fmt.Errorf("%w: required %s, held %s", ErrInsufficientCurrency, raised, balance)
	}

	// Validated -> PoolInitialized.
	priceX96, err := info.Auction.ClearingPrice(ctx)
	if err != nil {
		return nil, err
	}
	key, currencyIsCurrency0 := uniswapv4.NewPoolKey(info.Currency, token, l.cfg.Fee, l.cfg.TickSpacing, l.cfg.Hooks)

	data, err := prepareMigration(priceX96, raised, info.ReserveSupply, currencyIsCurrency0, key.TickSpacing)
	if err != nil {
		return nil, err
	}

	if err = l.positions.InitializePool(ctx, key, data.SqrtPriceX96); err != nil {
		return nil, err
	}

	// PoolInitialized -> PlanBuilt.
	amount0, amount1 := orderAmounts(data.CurrencyAmount, data.TokenAmount, currencyIsCurrency0)
	tokenSurplus := new(big.Int).Sub(info.ReserveSupply, data.TokenAmount)
	surplus0, surplus1 := orderAmounts(data.LeftoverCurrency, tokenSurplus, currencyIsCurrency0)

	planner := uniswapv4.NewPlanner(uniswapv4.BasePositionParams{
		PoolKey:      key,
		SqrtPriceX96: data.SqrtPriceX96,
		Liquidity:    data.Liquidity,
		Recipient:    l.cfg.PositionRecipient,
	})
	if err = planner.MintFullRange(data.Liquidity, amount0, amount1); err != nil {
		return nil, err
	}
	if _, err = planner.MintOneSided(surplus0, surplus1); err != nil {
		return nil, err
	}
	if err = planner.Finish(l.cfg.LeftoverReceiver); err != nil {
		return nil, err
	}
	plan, err := planner.Plan()
	if err != nil {
		return nil, err
	}
	unlockData, err := plan.Encode()
	if err != nil {
		return nil, err
	}

	// PlanBuilt -> Executed. The full reserve supply and raised currency move
	// to the position manager; whatever the mints do not settle comes back
	// through the take-pair sweep.
	value := big.NewInt(0)
	if info.Currency == uniswapv4.NativeCurrency {
		value = raised
	} else if err = l.ledger.Transfer(ctx, info.Currency, l.cfg.PositionManager, raised); err != nil {
		return nil, err
	}
	if err = l.ledger.Transfer(ctx, token, l.cfg.PositionManager, info.ReserveSupply); err != nil {
		return nil, err
	}

	blockTime, err := l.chain.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	deadline := new(big.Int).SetUint64(blockTime)
	if err = l.positions.ModifyLiquidities(ctx, unlockData, deadline, value); err != nil {
		return nil, err
	}

	l.mu.Lock()
	info.Migrated = true
	l.mu.Unlock()

	l.log.Info("migrated",
		zap.Stringer("token", token),
		zap.Stringer("currency0", key.Currency0),
		zap.Stringer("currency1", key.Currency1),
		zap.Uint32("fee", key.Fee),
		zap.Int32("tickSpacing", key.TickSpacing),
		zap.String("clearingPrice", v4math.Q96ToDecimal(priceX96, 18).String()),
		zap.String("sqrtPriceX96", data.SqrtPriceX96.String()),
		zap.String("liquidity", data.Liquidity.String()),
	)

	return &MigrationResult{
		PoolKey:      key,
		SqrtPriceX96: data.SqrtPriceX96,
		Data:         *data,
		Plan:         plan,
	}, nil
}

// prepareMigration runs the price conversion, allocation and liquidity
// sizing. Pure; shared with tests.
func prepareMigration(priceX96, currencyRaised, reserveSupply *big.Int, currencyIsCurrency0 bool, tickSpacing int32) (*MigrationData, error) {
	priceX192, err := v4math.PriceX96ToPriceX192(priceX96, currencyIsCurrency0)
	if err != nil {
		return nil, err
	}
	sqrtPriceX96, err := v4math.SqrtPriceX96FromPriceX192(priceX192)
	if err != nil {
		return nil, err
	}
	alloc, err := ComputeAllocation(priceX192, currencyRaised, reserveSupply, currencyIsCurrency0)
	if err != nil {
		return nil, err
	}

	sqrtLower, err := v4math.SqrtPriceAtTick(v4math.MinUsableTick(tickSpacing))
	if err != nil {
		return nil, err
	}
	sqrtUpper, err := v4math.SqrtPriceAtTick(v4math.MaxUsableTick(tickSpacing))
	if err != nil {
		return nil, err
	}
	amount0, amount1 := orderAmounts(alloc.CurrencyAmount, alloc.TokenAmount, currencyIsCurrency0)
	liquidity := v4math.LiquidityForAmounts(sqrtPriceX96, sqrtLower, sqrtUpper, amount0, amount1)

	return &MigrationData{
		SqrtPriceX96:     sqrtPriceX96,
		TokenAmount:      alloc.TokenAmount,
		CurrencyAmount:   alloc.CurrencyAmount,
		LeftoverCurrency: alloc.LeftoverCurrency,
		Liquidity:        liquidity,
	}, nil
}

// orderAmounts maps currency/token amounts onto the pool's currency0 and
// currency1 slots.
func orderAmounts(currencyAmount, tokenAmount *big.Int, currencyIsCurrency0 bool) (amount0, amount1 *big.Int) {
	if currencyIsCurrency0 {
		return currencyAmount, tokenAmount
	}
	return tokenAmount, currencyAmount
}
