// Package contracts provides go-ethereum backed implementations of the
// launcher's collaborator interfaces for use against a live deployment.
// Tests inject in-memory doubles instead.
package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

const auctionABI = `[
	{"type":"function","name":"currencyRaised","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"clearingPrice","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"checkpoint","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"sweepCurrency","stateMutability":"nonpayable","inputs":[{"type":"address"}],"outputs":[]},
	{"type":"function","name":"sweepUnsoldTokens","stateMutability":"nonpayable","inputs":[{"type":"address"}],"outputs":[]}
]`

const positionManagerABI = `[
	{"type":"function","name":"initializePool","stateMutability":"nonpayable","inputs":[
		{"type":"tuple","components":[
			{"name":"currency0","type":"address"},
			{"name":"currency1","type":"address"},
			{"name":"fee","type":"uint24"},
			{"name":"tickSpacing","type":"int24"},
			{"name":"hooks","type":"address"}
		]},
		{"type":"uint160"}
	],"outputs":[{"type":"int24"}]},
	{"type":"function","name":"modifyLiquidities","stateMutability":"payable","inputs":[
		{"type":"bytes"},{"type":"uint256"}
	],"outputs":[]}
]`

const erc20ABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"type":"address"},{"type":"uint256"}],"outputs":[{"type":"bool"}]}
]`

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

var (
	parsedAuctionABI         = mustParseABI(auctionABI)
	parsedPositionManagerABI = mustParseABI(positionManagerABI)
	parsedERC20ABI           = mustParseABI(erc20ABI)
)

func bound(address common.Address, parsed abi.ABI, client *ethclient.Client) *bind.BoundContract {
	return bind.NewBoundContract(address, parsed, client, client, client)
}
