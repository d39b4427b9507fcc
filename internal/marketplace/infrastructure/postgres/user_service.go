package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
)

// UserService owns the users table. Facade failures propagate unchanged;
// a storage success that misses the operation's postcondition becomes a
// user-scoped domain failure.
type UserService struct {
	store *database.Store
}

func NewUserService(store *database.Store) *UserService {
	return &UserService{
		store: store,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user domain.NewUser) (int, error) {
	createUserSQL := `INSERT INTO users (first_name, last_name, email) VALUES ($1, $2, $3) RETURNING id`

	outcome, err := s.store.RunReturningID(ctx, createUserSQL, user.FirstName, user.LastName, user.Email)
	if err != nil {
		return 0, err
	}

	if outcome.InsertedID <= 0 {
		return 0, domain.NewFailure(domain.FailedToCreateUser, nil)
	}

	return int(outcome.InsertedID), nil
}

func (s *UserService) GetUserById(ctx context.Context, userId int) (domain.User, error) {
	getUserSQL := `SELECT id, first_name, last_name, email, balance FROM users WHERE id=$1`

	return s.getUser(ctx, getUserSQL, userId)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	getUserSQL := `SELECT id, first_name, last_name, email, balance FROM users WHERE email=$1`

	return s.getUser(ctx, getUserSQL, email)
}

func (s *UserService) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	users, err := database.Retrieve[domain.User](ctx, s.store, query, arg)
	if err != nil {
		return domain.User{}, err
	}

	if len(users) < 1 {
		return domain.User{}, domain.NewFailure(domain.FailedToRetrieveUser, nil)
	}

	return users[0], nil
}

func (s *UserService) SetAccountBalance(ctx context.Context, userId int, balance decimal.Decimal) error {
	setBalanceSQL := `UPDATE users SET balance=$1 WHERE id=$2`

	outcome, err := s.store.Run(ctx, setBalanceSQL, balance, userId)
	if err != nil {
		return err
	}

	if outcome.RowsAffected < 1 {
		return domain.NewFailure(domain.FailedToSetAccountBalance, nil)
	}

	return nil
}
