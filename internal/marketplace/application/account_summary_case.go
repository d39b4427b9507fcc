package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
)

// AccountSummaryCase aggregates a user's account, sale listings, and
// transaction history. The three reads are independent, so they fan out
// concurrently; the first error cancels the siblings and propagates.
type AccountSummaryCase struct {
	users        domain.UserService
	widgets      domain.WidgetService
	transactions domain.TransactionService
}

func NewAccountSummaryCase(
	users domain.UserService,
	widgets domain.WidgetService,
	transactions domain.TransactionService,
) *AccountSummaryCase {
	return &AccountSummaryCase{
		users:        users,
		widgets:      widgets,
		transactions: transactions,
	}
}

func (sc *AccountSummaryCase) GetAccountSummary(ctx context.Context, userId int) (domain.AccountSummary, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var user domain.User
	var widgets []domain.Widget
	var transactions []domain.TransactionRecord

	group.Go(func() error {
		var err error
		user, err = sc.users.GetUserById(groupCtx, userId)
		return err
	})

	group.Go(func() error {
		var err error
		widgets, err = sc.widgets.GetWidgetsBySeller(groupCtx, userId)
		return err
	})

	group.Go(func() error {
		var err error
		transactions, err = sc.transactions.GetTransactionsByUser(groupCtx, userId)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.AccountSummary{}, err
	}

	return domain.AccountSummary{
		User:           user,
		WidgetsForSale: widgets,
		Transactions:   transactions,
	}, nil
}
