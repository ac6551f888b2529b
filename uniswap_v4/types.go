package uniswapv4

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NativeCurrency is the currency id of the chain's native asset.
var NativeCurrency = common.Address{}

// PoolKey identifies a pool in the pool manager.
type PoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         uint32
	TickSpacing int32
	Hooks       common.Address
}

// SortCurrencies orders two currency ids by byte comparison of their
// addresses, the ordering the pool manager enforces for currency0/currency1.
func SortCurrencies(a, b common.Address) (currency0, currency1 common.Address) {
	if bytes.Compare(a.Bytes(), b.Bytes()) < 0 {
		return a, b
	}
	return b, a
}

// NewPoolKey builds the pool key for a currency/token pair and reports
// whether the raised currency took the currency0 role. The same flag must
// drive price inversion and amount ordering everywhere downstream.
func NewPoolKey(currency, token common.Address, fee uint32, tickSpacing int32, hooks common.Address) (PoolKey, bool) {
	currency0, currency1 := SortCurrencies(currency, token)
	return PoolKey{
		Currency0:   currency0,
		Currency1:   currency1,
		Fee:         fee,
		TickSpacing: tickSpacing,
		Hooks:       hooks,
	}, currency0 == currency
}

// BasePositionParams describes the position the plan builder mints.
type BasePositionParams struct {
	PoolKey      PoolKey
	SqrtPriceX96 *big.Int
	Liquidity    *big.Int
	Recipient    common.Address
	HookData     []byte
}
