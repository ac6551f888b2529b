package cca

import (
	"github.com/openlaunch/cca-go/launcher"
)

// NewLauncher creates a token launcher.
//
// Example:
//
// l := NewLauncher(address, positionManager, ledger, chain, cfg, logger)
//
// l.CreateAuction(launcher.CreateAuctionParams{Token: token, Auction: auction, Currency: currency, ReserveSupply: supply, EndBlock: end})
//
// l.Migrate(ctx, token)
var NewLauncher = launcher.NewLauncher

// LoadConfig reads a launcher config from a JSON file.
var LoadConfig = launcher.LoadConfig
