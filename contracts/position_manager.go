package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	uniswapv4 "github.com/openlaunch/cca-go/uniswap_v4"
)

// PositionManagerContract adapts a deployed position manager to
// uniswapv4.PositionManager.
type PositionManagerContract struct {
	contract *bind.BoundContract
	opts     *bind.TransactOpts
}

func NewPositionManagerContract(address common.Address, client *ethclient.Client, opts *bind.TransactOpts) *PositionManagerContract {
	return &PositionManagerContract{
		contract: bound(address, parsedPositionManagerABI, client),
		opts:     opts,
	}
}

// poolKeyArg mirrors the PoolKey tuple for ABI packing.
type poolKeyArg struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       common.Address
}

func (p *PositionManagerContract) InitializePool(ctx context.Context, key uniswapv4.PoolKey, sqrtPriceX96 *big.Int) error {
	opts := *p.opts
	opts.Context = ctx
	_, err := p.contract.Transact(&opts, "initializePool", poolKeyArg{
		Currency0:   key.Currency0,
		Currency1:   key.Currency1,
		Fee:         new(big.Int).SetUint64(uint64(key.Fee)),
		TickSpacing: big.NewInt(int64(key.TickSpacing)),
		Hooks:       key.Hooks,
	}, sqrtPriceX96)
	return err
}

func (p *PositionManagerContract) ModifyLiquidities(ctx context.Context, unlockData []byte, deadline *big.Int, value *big.Int) error {
	opts := *p.opts
	opts.Context = ctx
	opts.Value = value
	_, err := p.contract.Transact(&opts, "modifyLiquidities", unlockData, deadline)
	return err
}
