package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ChainLedger implements launcher.Ledger over an RPC client: native balances
// via the chain state, ERC-20 balances and transfers via the token contract.
type ChainLedger struct {
	client *ethclient.Client
	opts   *bind.TransactOpts
}

func NewChainLedger(client *ethclient.Client, opts *bind.TransactOpts) *ChainLedger {
	return &ChainLedger{client: client, opts: opts}
}

func (l *ChainLedger) BalanceOf(ctx context.Context, currency, holder common.Address) (*big.Int, error) {
	if currency == (common.Address{}) {
		return l.client.BalanceAt(ctx, holder, nil)
	}
	var out []interface{}
	token := bound(currency, parsedERC20ABI, l.client)
	if err := token.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", holder); err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (l *ChainLedger) Transfer(ctx context.Context, currency, to common.Address, amount *big.Int) error {
	opts := *l.opts
	opts.Context = ctx
	if currency == (common.Address{}) {
		nonce, err := l.client.PendingNonceAt(ctx, opts.From)
		if err != nil {
			return err
		}
		tip, err := l.client.SuggestGasTipCap(ctx)
		if err != nil {
			return err
		}
		head, err := l.client.HeaderByNumber(ctx, nil)
		if err != nil {
			return err
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		chainID, err := l.client.ChainID(ctx)
		if err != nil {
			return err
		}
		tx := types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       21000,
			To:        &to,
			Value:     amount,
		})
		signed, err := opts.Signer(opts.From, tx)
		if err != nil {
			return err
		}
		return l.client.SendTransaction(ctx, signed)
	}
	token := bound(currency, parsedERC20ABI, l.client)
	_, err := token.Transact(&opts, "transfer", to, amount)
	return err
}

// ChainReader implements launcher.ChainReader over an RPC client.
type ChainReader struct {
	client *ethclient.Client
}

func NewChainReader(client *ethclient.Client) *ChainReader {
	return &ChainReader{client: client}
}

func (r *ChainReader) BlockNumber(ctx context.Context) (uint64, error) {
	return r.client.BlockNumber(ctx)
}

func (r *ChainReader) BlockTime(ctx context.Context) (uint64, error) {
	header, err := r.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	return header.Time, nil
}
