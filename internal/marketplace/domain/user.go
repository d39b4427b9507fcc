package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type User struct {
	Id        int             `db:"id" json:"id"`
	FirstName string          `db:"first_name" json:"first_name"`
	LastName  string          `db:"last_name" json:"last_name"`
	Email     string          `db:"email" json:"email"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
}

// NewUser carries the caller-supplied fields of a user to be created. The
// store assigns the id and a starting balance of zero.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
}

type UserService interface {
	CreateUser(ctx context.Context, user NewUser) (int, error)
	GetUserById(ctx context.Context, userId int) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	SetAccountBalance(ctx context.Context, userId int, balance decimal.Decimal) error
}
