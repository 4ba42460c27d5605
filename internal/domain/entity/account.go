package entity

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must be positive")
)

// Account is a single in-memory account supplied with the request.
// Identifiers are case-sensitive; balances are whole currency units.
type Account struct {
	id       string
	balance  int64
	currency string
}

func NewAccount(id string, balance int64, currency string) *Account {
	return &Account{
		id:       id,
		balance:  balance,
		currency: currency,
	}
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) Balance() int64 {
	return a.balance
}

func (a *Account) Currency() string {
	return a.currency
}

func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}
	if a.balance < amount {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}

func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}
	a.balance += amount
	return nil
}
