package math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// MulDiv computes x*y/denominator with an arbitrary-precision intermediate,
// so the product never overflows before the divide.
func MulDiv(x, y, denominator *big.Int, rounding Rounding) *big.Int {
	if denominator.Sign() == 0 {
		return big.NewInt(0)
	}
	mul := new(big.Int).Mul(x, y)
	div, mod := new(big.Int).QuoRem(mul, denominator, new(big.Int))
	if rounding == RoundingUp && mod.Sign() != 0 {
		return div.Add(div, big.NewInt(1))
	}
	return div
}

// Sqrt returns the integer square root of value, truncated toward zero.
func Sqrt(value *big.Int) *big.Int {
	if value == nil || value.Sign() <= 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sqrt(value)
}

func Q96ToDecimal(num *big.Int, decimalPlaces int32) decimal.Decimal {
	if num == nil {
		return decimal.Zero
	}
	out := decimal.NewFromBigInt(num, 0).Div(decimal.NewFromBigInt(Q96, 0))
	if decimalPlaces >= 0 {
		return out.Round(decimalPlaces)
	}
	return out
}

func DecimalToQ96(num decimal.Decimal) *big.Int {
	v := num.Mul(decimal.NewFromBigInt(Q96, 0)).Floor()
	return v.BigInt()
}
