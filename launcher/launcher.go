package launcher

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	uniswapv4 "github.com/openlaunch/cca-go/uniswap_v4"
)

// Auction is the read/sweep surface of the external auction contract.
type Auction interface {
	// CurrencyRaised reports the final amount of currency raised. Only valid
	// after Checkpoint.
	CurrencyRaised(ctx context.Context) (*big.Int, error)

	// ClearingPrice reports the final clearing price as currency per token in
	// Q96 fixed point.
	ClearingPrice(ctx context.Context) (*big.Int, error)

	// Checkpoint forces the auction to refresh its internal accounting.
	Checkpoint(ctx context.Context) error

	SweepCurrency(ctx context.Context, to common.Address) error
	SweepUnsoldTokens(ctx context.Context, to common.Address) error
}

// Ledger models currency and token balances of the execution substrate. The
// zero currency id is the native asset.
type Ledger interface {
	BalanceOf(ctx context.Context, currency, holder common.Address) (*big.Int, error)
	Transfer(ctx context.Context, currency, to common.Address, amount *big.Int) error
}

// ChainReader is the block clock.
type ChainReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockTime(ctx context.Context) (uint64, error)
}

// AuctionInfo is the per-launched-token record. Immutable after creation
// except for the Migrated flag.
type AuctionInfo struct {
	Auction       Auction
	Currency      common.Address
	ReserveSupply *big.Int
	EndBlock      uint64
	Migrated      bool
}

// Config carries the pool parameters every migrated position uses.
type Config struct {
	Fee               uint32
	TickSpacing       int32
	Hooks             common.Address
	PositionManager   common.Address
	PositionRecipient common.Address
	LeftoverReceiver  common.Address
}

// Launcher records launched auctions and migrates their outcomes into
// pool positions.
type Launcher struct {
	address   common.Address
	positions uniswapv4.PositionManager
	ledger    Ledger
	chain     ChainReader
	cfg       Config
	log       *zap.Logger

	mu       sync.RWMutex
	auctions map[common.Address]*AuctionInfo
}

// NewLauncher builds a launcher holding funds at address. Pass a nil logger
// to disable logging.
func NewLauncher(
	address common.Address,
	positions uniswapv4.PositionManager,
	ledger Ledger,
	chain ChainReader,
	cfg Config,
	log *zap.Logger,
) *Launcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{
		address:   address,
		positions: positions,
		ledger:    ledger,
		chain:     chain,
		cfg:       cfg,
		log:       log,
		auctions:  make(map[common.Address]*AuctionInfo),
	}
}

// CreateAuctionParams describes a newly launched token auction.
type CreateAuctionParams struct {
	Token         common.Address
	Auction       Auction
	Currency      common.Address
	ReserveSupply *big.Int
	EndBlock      uint64
	Creator       common.Address
}

// CreateAuction records the auction for a launched token. One record per
// token; the reserve supply is the token quantity withheld from the auction
// for seeding liquidity.
func (l *Launcher) CreateAuction(params CreateAuctionParams) error {
	if params.ReserveSupply == nil || params.ReserveSupply.BitLen() > 128 {
		return ErrReserveSupplyTooHigh
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.auctions[params.Token]; ok {
		return ErrAuctionExists
	}
	l.auctions[params.Token] = &AuctionInfo{
		Auction:       params.Auction,
		Currency:      params.Currency,
		ReserveSupply: new(big.Int).Set(params.ReserveSupply),
		EndBlock:      params.EndBlock,
	}

	l.log.Info("auction created",
		zap.Stringer("token", params.Token),
		zap.Stringer("currency", params.Currency),
		zap.Stringer("creator", params.Creator),
		zap.String("reserveSupply", params.ReserveSupply.String()),
		zap.Uint64("endBlock", params.EndBlock),
	)
	return nil
}

// AuctionInfo returns a copy of the record for token.
func (l *Launcher) AuctionInfo(token common.Address) (AuctionInfo, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	info, ok := l.auctions[token]
	if !ok {
		return AuctionInfo{}, ErrUnknownToken
	}
	out := *info
	out.ReserveSupply = new(big.Int).Set(info.ReserveSupply)
	return out, nil
}

// SweepUnsoldTokens returns the auction's unsold tokens to the leftover
// receiver.
func (l *Launcher) SweepUnsoldTokens(ctx context.Context, token common.Address) error {
	l.mu.RLock()
	info, ok := l.auctions[token]
	l.mu.RUnlock()
	if !ok {
		return ErrUnknownToken
	}
	return info.Auction.SweepUnsoldTokens(ctx, l.cfg.LeftoverReceiver)
}
