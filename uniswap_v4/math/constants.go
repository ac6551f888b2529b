package math

import "math/big"

type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

const (
	// MinTick and MaxTick bound the usable tick range of the pool manager.
	MinTick int32 = -887272
	MaxTick int32 = 887272
)

var (
	Q96  = new(big.Int).Lsh(big.NewInt(1), 96)
	Q192 = new(big.Int).Lsh(big.NewInt(1), 192)

	MaxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	MaxUint160 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	// Admissible sqrt price range of the pool manager,
	// equal to the sqrt prices at MinTick and MaxTick.
	MinSqrtPrice = big.NewInt(4295128739)
	MaxSqrtPrice = mustBig("1461446703485210103287273052203988822378723970342")
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("math: invalid constant " + s)
	}
	return v
}
