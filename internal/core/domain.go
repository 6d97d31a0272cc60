package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Money is an amount in kopiykas (hundredths of a hryvnia).
	Money struct {
		Cents int64
	}

	// Expense is a single recorded spend event. ID is assigned by the
	// store at creation; every other field is immutable after that.
	Expense struct {
		ID       int64
		UserID   int64
		Amount   Money
		Category string
		Date     time.Time
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrMissingCategory = errors.New("missing category")
	ErrInvalidPosition = errors.New("invalid position")
	ErrEmptyLedger     = errors.New("empty ledger")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if e.UserID == 0 {
		return errors.New("missing user id")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrMissingCategory
	}
	if len(e.Category) > 200 {
		return errors.New("category too long (max 200 characters)")
	}
	return nil
}
