package application

import "github.com/shopspring/decimal"

type balanceAmounts struct {
	buyerBalance   decimal.Decimal
	sellerBalance  decimal.Decimal
	widgetPrice    decimal.Decimal
	marketplaceFee decimal.Decimal
}

type newBalances struct {
	newBuyerBalance  decimal.Decimal
	newSellerBalance decimal.Decimal
}

// calculateBalances determines what the user balances should be after a
// successful purchase. The buyer pays the full price; the seller receives the
// proceeds left once the marketplace takes its cut. Pure decimal arithmetic,
// no clamping, no rounding.
func calculateBalances(amounts balanceAmounts) newBalances {
	newBuyerBalance := amounts.buyerBalance.Sub(amounts.widgetPrice)
	widgetProceeds := amounts.widgetPrice.Mul(decimal.NewFromInt(1).Sub(amounts.marketplaceFee))
	newSellerBalance := amounts.sellerBalance.Add(widgetProceeds)

	return newBalances{
		newBuyerBalance:  newBuyerBalance,
		newSellerBalance: newSellerBalance,
	}
}
