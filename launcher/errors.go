package launcher

import "errors"

var (
	ErrUnknownToken         = errors.New("no auction recorded for token")
	ErrAuctionExists        = errors.New("auction already recorded for token")
	ErrReserveSupplyTooHigh = errors.New("reserve supply exceeds 128 bits")

	ErrMigrationNotAllowed   = errors.New("auction has not ended")
	ErrAlreadyMigrated       = errors.New("token already migrated")
	ErrNoCurrencyRaised      = errors.New("no currency raised")
	ErrCurrencyAmountTooHigh = errors.New("currency raised exceeds 128 bits")
	ErrInsufficientCurrency  = errors.New("insufficient currency balance")
	ErrAmountOverflow        = errors.New("currency amount exceeds 128 bits")
)
