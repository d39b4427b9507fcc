package domain

import "context"

// TransactionRecord is append-only: created once per successful purchase,
// never updated or deleted. The store assigns the id and unix timestamp.
type TransactionRecord struct {
	Id           int   `db:"id" json:"id"`
	DatetimeUnix int64 `db:"datetime_unix" json:"datetime_unix"`
	BuyerId      int   `db:"id_buyer" json:"buyer_id"`
	SellerId     int   `db:"id_seller" json:"seller_id"`
	WidgetId     int   `db:"id_widget" json:"widget_id"`
}

type NewTransaction struct {
	BuyerId  int
	SellerId int
	WidgetId int
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, transaction NewTransaction) (int, error)
	GetTransactionsByUser(ctx context.Context, userId int) ([]TransactionRecord, error)
}
