package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// FeeService exposes the configured marketplace fee fraction (e.g. 0.05).
// The fee is read-only to the rest of the system; when several rows exist the
// earliest-inserted one wins.
type FeeService interface {
	GetMarketplaceFee(ctx context.Context) (decimal.Decimal, error)
}
