package domain

import "context"

// WidgetPurchaser runs the purchase workflow for one buyer/widget pair.
type WidgetPurchaser interface {
	PurchaseWidget(ctx context.Context, buyerId int, widgetId int) error
}

// AccountSummary aggregates everything the marketplace knows about one user:
// the account itself, the widgets they offer, and their transaction history.
type AccountSummary struct {
	User           User                `json:"user"`
	WidgetsForSale []Widget            `json:"widgets_for_sale"`
	Transactions   []TransactionRecord `json:"transactions"`
}

type AccountSummarizer interface {
	GetAccountSummary(ctx context.Context, userId int) (AccountSummary, error)
}
