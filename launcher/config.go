package launcher

import (
	"errors"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidFee         = errors.New("fee out of range")
	ErrInvalidTickSpacing = errors.New("tick spacing out of range")
)

// LoadConfig reads a launcher config from a JSON file.
//
//	{
//	  "fee": 3000,
//	  "tickSpacing": 60,
//	  "hooks": "0x0000000000000000000000000000000000000000",
//	  "positionManager": "0x...",
//	  "positionRecipient": "0x...",
//	  "leftoverReceiver": "0x..."
//	}
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(raw)
}

// ParseConfig decodes a launcher config from JSON bytes.
func ParseConfig(raw []byte) (Config, error) {
	cfg := Config{
		Fee:               uint32(gjson.GetBytes(raw, "fee").Uint()),
		TickSpacing:       int32(gjson.GetBytes(raw, "tickSpacing").Int()),
		Hooks:             common.HexToAddress(gjson.GetBytes(raw, "hooks").String()),
		PositionManager:   common.HexToAddress(gjson.GetBytes(raw, "positionManager").String()),
		PositionRecipient: common.HexToAddress(gjson.GetBytes(raw, "positionRecipient").String()),
		LeftoverReceiver:  common.HexToAddress(gjson.GetBytes(raw, "leftoverReceiver").String()),
	}
	// Pool fee is parts-per-million.
	if cfg.Fee > 1_000_000 {
		return Config{}, ErrInvalidFee
	}
	if cfg.TickSpacing <= 0 || cfg.TickSpacing > 32767 {
		return Config{}, ErrInvalidTickSpacing
	}
	return cfg, nil
}
