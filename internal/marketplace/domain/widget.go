package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Widget struct {
	Id          int             `db:"id" json:"id"`
	SellerId    int             `db:"id_seller" json:"seller_id"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Purchased   bool            `db:"purchased" json:"purchased"`
}

// NewWidget carries the caller-supplied fields of a widget offered for sale.
// The store assigns the id; purchased starts false and flips to true at most
// once, on a successful purchase.
type NewWidget struct {
	SellerId    int
	Description string
	Price       decimal.Decimal
}

type WidgetService interface {
	CreateWidget(ctx context.Context, widget NewWidget) (int, error)
	GetWidget(ctx context.Context, widgetId int) (Widget, error)
	SetPurchased(ctx context.Context, widgetId int, purchased bool) error
	GetWidgetsBySeller(ctx context.Context, sellerId int) ([]Widget, error)
}
