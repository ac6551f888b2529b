package launcher

import (
	"math/big"

	v4math "github.com/openlaunch/cca-go/uniswap_v4/math"
)

// Allocation is the split of raised currency and reserve tokens that seeds
// the initial position. CurrencyAmount + LeftoverCurrency always equals the
// raised currency exactly.
type Allocation struct {
	TokenAmount      *big.Int
	CurrencyAmount   *big.Int
	LeftoverCurrency *big.Int
}

// ComputeAllocation pairs raised currency with the reserve-token budget at
// the clearing price. When demand would need more reserve token than exists,
// the token side is capped at the reserve supply and the currency that the
// cap cannot absorb becomes leftover. Pure and deterministic.
//
// priceX192 is the pool-oriented price (currency1 per currency0);
// currencyIsCurrency0 tells which side the raised currency sits on.
func ComputeAllocation(priceX192, currencyRaised, reserveSupply *big.Int, currencyIsCurrency0 bool) (Allocation, error) {
	if priceX192 == nil || priceX192.Sign() == 0 {
		return Allocation{}, v4math.ErrPriceIsZero
	}

	currencyToToken := func(amount *big.Int) *big.Int {
		if currencyIsCurrency0 {
			return v4math.MulDiv(amount, priceX192, v4math.Q192, v4math.RoundingDown)
		}
		return v4math.MulDiv(amount, v4math.Q192, priceX192, v4math.RoundingDown)
	}
	tokenToCurrency := func(amount *big.Int) *big.Int {
		if currencyIsCurrency0 {
			return v4math.MulDiv(amount, v4math.Q192, priceX192, v4math.RoundingDown)
		}
		return v4math.MulDiv(amount, priceX192, v4math.Q192, v4math.RoundingDown)
	}

	tokenAmount := currencyToToken(currencyRaised)
	if tokenAmount.Cmp(reserveSupply) <= 0 {
		return Allocation{
			TokenAmount:      tokenAmount,
			CurrencyAmount:   new(big.Int).Set(currencyRaised),
			LeftoverCurrency: big.NewInt(0),
		}, nil
	}

	currencyAmount := tokenToCurrency(reserveSupply)
	if currencyAmount.BitLen() > 128 {
		return Allocation{}, ErrAmountOverflow
	}
	leftover := new(big.Int).Sub(currencyRaised, currencyAmount)
	if leftover.Sign() < 0 {
		// Floor rounding keeps the recomputed amount at or below the raised
		// total; guard the subtraction anyway.
		currencyAmount = new(big.Int).Set(currencyRaised)
		leftover = big.NewInt(0)
	}
	return Allocation{
		TokenAmount:      new(big.Int).Set(reserveSupply),
		CurrencyAmount:   currencyAmount,
		LeftoverCurrency: leftover,
	}, nil
}
