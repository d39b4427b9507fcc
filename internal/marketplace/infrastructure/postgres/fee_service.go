package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
)

type feeRecord struct {
	Marketplace decimal.Decimal `db:"marketplace"`
}

// FeeService reads the configured marketplace fee. The fees table is expected
// to hold a single row; ordering by id keeps the earliest insert authoritative
// if more ever appear.
type FeeService struct {
	store *database.Store
}

func NewFeeService(store *database.Store) *FeeService {
	return &FeeService{
		store: store,
	}
}

func (s *FeeService) GetMarketplaceFee(ctx context.Context) (decimal.Decimal, error) {
	getFeeSQL := `SELECT marketplace FROM fees ORDER BY id ASC LIMIT 1`

	fees, err := database.Retrieve[feeRecord](ctx, s.store, getFeeSQL)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if len(fees) < 1 {
		return decimal.Decimal{}, domain.NewFailure(domain.FailedToRetrieveFee, nil)
	}

	return fees[0].Marketplace, nil
}
