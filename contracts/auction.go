package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// AuctionContract adapts a deployed auction contract to launcher.Auction.
// Write methods submit transactions with the given opts and return without
// waiting for inclusion.
type AuctionContract struct {
	contract *bind.BoundContract
	opts     *bind.TransactOpts
}

func NewAuctionContract(address common.Address, client *ethclient.Client, opts *bind.TransactOpts) *AuctionContract {
	return &AuctionContract{
		contract: bound(address, parsedAuctionABI, client),
		opts:     opts,
	}
}

func (a *AuctionContract) callUint256(ctx context.Context, method string) (*big.Int, error) {
	var out []interface{}
	if err := a.contract.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (a *AuctionContract) CurrencyRaised(ctx context.Context) (*big.Int, error) {
	return a.callUint256(ctx, "currencyRaised")
}

func (a *AuctionContract) ClearingPrice(ctx context.Context) (*big.Int, error) {
	return a.callUint256(ctx, "clearingPrice")
}

func (a *AuctionContract) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *a.opts
	opts.Context = ctx
	return &opts
}

func (a *AuctionContract) Checkpoint(ctx context.Context) error {
	_, err := a.contract.Transact(a.transactOpts(ctx), "checkpoint")
	return err
}

func (a *AuctionContract) SweepCurrency(ctx context.Context, to common.Address) error {
	_, err := a.contract.Transact(a.transactOpts(ctx), "sweepCurrency", to)
	return err
}

func (a *AuctionContract) SweepUnsoldTokens(ctx context.Context, to common.Address) error {
	_, err := a.contract.Transact(a.transactOpts(ctx), "sweepUnsoldTokens", to)
	return err
}
