package postgres

import (
	"context"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
)

// TransactionService owns the append-only transaction_records table.
type TransactionService struct {
	store *database.Store
}

func NewTransactionService(store *database.Store) *TransactionService {
	return &TransactionService{
		store: store,
	}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, transaction domain.NewTransaction) (int, error) {
	createTransactionSQL := `INSERT INTO transaction_records (id_buyer, id_seller, id_widget) VALUES ($1, $2, $3) RETURNING id`

	outcome, err := s.store.RunReturningID(ctx, createTransactionSQL, transaction.BuyerId, transaction.SellerId, transaction.WidgetId)
	if err != nil {
		return 0, err
	}

	if outcome.InsertedID <= 0 {
		return 0, domain.NewFailure(domain.FailedToCreateTransaction, nil)
	}

	return int(outcome.InsertedID), nil
}

// GetTransactionsByUser lists every transaction the user took part in, as
// buyer or as seller. Zero transactions is a valid outcome, not a failure.
func (s *TransactionService) GetTransactionsByUser(ctx context.Context, userId int) ([]domain.TransactionRecord, error) {
	listTransactionsSQL := `SELECT id, datetime_unix, id_buyer, id_seller, id_widget
FROM transaction_records
WHERE id_buyer=$1 OR id_seller=$1
ORDER BY id ASC`

	transactions, err := database.Retrieve[domain.TransactionRecord](ctx, s.store, listTransactionsSQL, userId)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
