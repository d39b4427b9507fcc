package application

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBalances(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		buyerBalance   string
		sellerBalance  string
		widgetPrice    string
		marketplaceFee string

		expectedBuyerBalance  string
		expectedSellerBalance string
	}

	tests := []testCase{
		{
			name:          "all zero",
			buyerBalance:  "0",
			sellerBalance: "0", widgetPrice: "0", marketplaceFee: "0",
			expectedBuyerBalance: "0", expectedSellerBalance: "0",
		},
		{
			name:         "fee of one consumes the proceeds",
			buyerBalance: "1",
			sellerBalance: "1", widgetPrice: "1", marketplaceFee: "1",
			expectedBuyerBalance: "0", expectedSellerBalance: "1",
		},
		{
			name:         "negative inputs pass through the arithmetic",
			buyerBalance: "-1",
			sellerBalance: "-1", widgetPrice: "-1", marketplaceFee: "-1",
			expectedBuyerBalance: "0", expectedSellerBalance: "-3",
		},
		{
			name:         "balance may go negative without clamping",
			buyerBalance: "1",
			sellerBalance: "1", widgetPrice: "2", marketplaceFee: "0.5",
			expectedBuyerBalance: "-1", expectedSellerBalance: "2",
		},
		{
			name:         "five percent marketplace fee",
			buyerBalance: "10",
			sellerBalance: "5", widgetPrice: "4", marketplaceFee: "0.05",
			expectedBuyerBalance: "6", expectedSellerBalance: "8.8",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			balances := calculateBalances(balanceAmounts{
				buyerBalance:   decimal.RequireFromString(tt.buyerBalance),
				sellerBalance:  decimal.RequireFromString(tt.sellerBalance),
				widgetPrice:    decimal.RequireFromString(tt.widgetPrice),
				marketplaceFee: decimal.RequireFromString(tt.marketplaceFee),
			})

			expectedBuyer := decimal.RequireFromString(tt.expectedBuyerBalance)
			expectedSeller := decimal.RequireFromString(tt.expectedSellerBalance)

			assert.True(t, expectedBuyer.Equal(balances.newBuyerBalance),
				"buyer balance: expected %s, got %s", expectedBuyer, balances.newBuyerBalance)
			assert.True(t, expectedSeller.Equal(balances.newSellerBalance),
				"seller balance: expected %s, got %s", expectedSeller, balances.newSellerBalance)
		})
	}
}
