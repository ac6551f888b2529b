package math

import (
	"errors"
	"math/big"
)

var (
	ErrPriceIsZero          = errors.New("price is zero")
	ErrPriceTooHigh         = errors.New("price exceeds 160 bits")
	ErrSqrtPriceOutOfBounds = errors.New("sqrt price out of bounds")
)

// PriceX96ToPriceX192 converts a clearing price quoted as currency per token
// in Q96 into the pool convention (currency1 per currency0) in Q192.
//
// The pool manager always quotes currency1 in terms of currency0. When the
// raised currency sorts below the token it plays the currency0 role and the
// quoted price must be inverted; otherwise the quote already has the right
// orientation. Either way the Q96 magnitude must fit in 160 bits so the Q192
// result fits in 256.
func PriceX96ToPriceX192(priceX96 *big.Int, currencyIsCurrency0 bool) (*big.Int, error) {
	if priceX96 == nil || priceX96.Sign() == 0 {
		return nil, ErrPriceIsZero
	}
	price := priceX96
	if currencyIsCurrency0 {
		price = new(big.Int).Div(Q192, priceX96)
		// A quote above 2^192 inverts to zero; report it as the magnitude
		// failure it is rather than letting a zero price escape.
		if price.Sign() == 0 {
			return nil, ErrPriceTooHigh
		}
	}
	if price.BitLen() > 160 {
		return nil, ErrPriceTooHigh
	}
	return new(big.Int).Lsh(price, 96), nil
}

// SqrtPriceX96FromPriceX192 derives the pool-native sqrt price from a Q192
// price. The square root truncates toward zero, which slightly undervalues
// the price and therefore the liquidity derived from it.
func SqrtPriceX96FromPriceX192(priceX192 *big.Int) (*big.Int, error) {
	if priceX192 == nil || priceX192.Sign() == 0 {
		return nil, ErrPriceIsZero
	}
	sqrtPriceX96 := new(big.Int).Sqrt(priceX192)
	if sqrtPriceX96.Cmp(MinSqrtPrice) < 0 || sqrtPriceX96.Cmp(MaxSqrtPrice) > 0 {
		return nil, ErrSqrtPriceOutOfBounds
	}
	return sqrtPriceX96, nil
}
