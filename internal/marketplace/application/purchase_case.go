package application

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
)

// PurchaseCase coordinates the user, widget, fee, and transaction services to
// complete a widget purchase. The first failure at any step is terminal and
// propagates with the kind of the layer that produced it. Writes already
// applied before a mid-sequence failure are not rolled back; each service call
// commits independently.
type PurchaseCase struct {
	users        domain.UserService
	widgets      domain.WidgetService
	fees         domain.FeeService
	transactions domain.TransactionService
}

func NewPurchaseCase(
	users domain.UserService,
	widgets domain.WidgetService,
	fees domain.FeeService,
	transactions domain.TransactionService,
) *PurchaseCase {
	return &PurchaseCase{
		users:        users,
		widgets:      widgets,
		fees:         fees,
		transactions: transactions,
	}
}

type purchaseEntities struct {
	buyer          domain.User
	seller         domain.User
	widget         domain.Widget
	marketplaceFee decimal.Decimal
}

func (pc *PurchaseCase) PurchaseWidget(ctx context.Context, buyerId int, widgetId int) error {
	entities, err := pc.getEntities(ctx, buyerId, widgetId)
	if err != nil {
		return err
	}

	balances := calculateBalances(balanceAmounts{
		buyerBalance:   entities.buyer.Balance,
		sellerBalance:  entities.seller.Balance,
		widgetPrice:    entities.widget.Price,
		marketplaceFee: entities.marketplaceFee,
	})

	return pc.updateEntities(ctx, entities, balances)
}

// getEntities fetches everything the purchase needs and validates the business
// rules. Rule order is fixed: availability, then funds, then ownership — it
// decides which violation a multiply-invalid request reports.
func (pc *PurchaseCase) getEntities(ctx context.Context, buyerId int, widgetId int) (purchaseEntities, error) {
	buyer, err := pc.users.GetUserById(ctx, buyerId)
	if err != nil {
		return purchaseEntities{}, err
	}

	widget, err := pc.widgets.GetWidget(ctx, widgetId)
	if err != nil {
		return purchaseEntities{}, err
	}

	if widget.Purchased {
		return purchaseEntities{}, domain.NewPurchaseFailure(domain.WidgetUnavailable)
	}
	if buyer.Balance.LessThan(widget.Price) {
		return purchaseEntities{}, domain.NewPurchaseFailure(domain.InsufficientFunds)
	}
	if buyer.Id == widget.SellerId {
		return purchaseEntities{}, domain.NewPurchaseFailure(domain.BuyerOwnsWidget)
	}

	seller, err := pc.users.GetUserById(ctx, widget.SellerId)
	if err != nil {
		return purchaseEntities{}, err
	}

	marketplaceFee, err := pc.fees.GetMarketplaceFee(ctx)
	if err != nil {
		return purchaseEntities{}, err
	}

	return purchaseEntities{
		buyer:          buyer,
		seller:         seller,
		widget:         widget,
		marketplaceFee: marketplaceFee,
	}, nil
}

// updateEntities applies the four writes in a fixed order: buyer balance,
// widget purchased flag, seller balance, transaction record. A failure aborts
// the remaining writes and surfaces as-is.
func (pc *PurchaseCase) updateEntities(ctx context.Context, entities purchaseEntities, balances newBalances) error {
	if err := pc.users.SetAccountBalance(ctx, entities.buyer.Id, balances.newBuyerBalance); err != nil {
		return err
	}

	if err := pc.widgets.SetPurchased(ctx, entities.widget.Id, true); err != nil {
		return err
	}

	if err := pc.users.SetAccountBalance(ctx, entities.seller.Id, balances.newSellerBalance); err != nil {
		return err
	}

	_, err := pc.transactions.CreateTransaction(ctx, domain.NewTransaction{
		BuyerId:  entities.buyer.Id,
		SellerId: entities.seller.Id,
		WidgetId: entities.widget.Id,
	})
	if err != nil {
		return err
	}

	return nil
}
