// Package ledger orchestrates the expense ledger operations: parsing
// input, persisting records, and deriving summaries.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"vytraty/internal/core"
)

// Store is the persistence port the service depends on. ListByUser must
// return the user's expenses ordered by date ascending (id ascending for
// equal dates), because positional addressing is derived from that order.
type Store interface {
	Insert(ctx context.Context, e core.Expense) (core.Expense, error)
	ListByUser(ctx context.Context, userID int64) ([]core.Expense, error)
	DeleteByID(ctx context.Context, userID, id int64) error
	DeleteAllByUser(ctx context.Context, userID int64) (int64, error)
}

// Publisher emits ledger mutation events. A nil Publisher disables
// publishing; publish failures never fail the operation that triggered
// them, the local write is the source of truth.
type Publisher interface {
	ExpenseRecorded(ctx context.Context, e core.Expense) error
	ExpenseDeleted(ctx context.Context, e core.Expense) error
	LedgerCleared(ctx context.Context, userID, count int64) error
}

type Service struct {
	store     Store
	publisher Publisher
}

func NewService(store Store, publisher Publisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
	}
}

// Add parses a raw "amount category" line and persists the resulting
// expense for userID with the current time as its date.
func (s *Service) Add(ctx context.Context, userID int64, raw string) (core.Expense, error) {
	entry, err := core.ParseEntry(raw)
	if err != nil {
		return core.Expense{}, err
	}

	saved, err := s.store.Insert(ctx, core.Expense{
		UserID:   userID,
		Amount:   entry.Amount,
		Category: entry.Category,
	})
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense recorded",
		"id", saved.ID,
		"user_id", saved.UserID,
		"amount_cents", saved.Amount.Cents,
		"category", saved.Category)

	if s.publisher != nil {
		if err := s.publisher.ExpenseRecorded(ctx, saved); err != nil {
			slog.ErrorContext(ctx, "Failed to publish expense recorded event",
				"id", saved.ID, "error", err)
		}
	}

	return saved, nil
}

// List returns the user's expenses ordered by date ascending together
// with their total. An empty ledger yields an empty slice and zero total.
func (s *Service) List(ctx context.Context, userID int64) ([]core.Expense, core.Money, error) {
	expenses, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("list expenses: %w", err)
	}

	var total core.Money
	for _, e := range expenses {
		total.Cents += e.Amount.Cents
	}
	return expenses, total, nil
}

// DeleteAt removes the expense at the given 1-based position in the
// ascending-by-date ordering. The snapshot is fetched fresh on every
// call; positions are never stored.
func (s *Service) DeleteAt(ctx context.Context, userID int64, position int) (core.Expense, error) {
	expenses, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return core.Expense{}, fmt.Errorf("list expenses: %w", err)
	}
	if position < 1 || position > len(expenses) {
		return core.Expense{}, core.ErrInvalidPosition
	}

	target := expenses[position-1]
	if err := s.store.DeleteByID(ctx, userID, target.ID); err != nil {
		return core.Expense{}, fmt.Errorf("delete expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted",
		"id", target.ID,
		"user_id", userID,
		"position", position)

	if s.publisher != nil {
		if err := s.publisher.ExpenseDeleted(ctx, target); err != nil {
			slog.ErrorContext(ctx, "Failed to publish expense deleted event",
				"id", target.ID, "error", err)
		}
	}

	return target, nil
}

// Clear removes every expense belonging to userID and returns the count
// removed. Clearing an empty ledger is a no-op, not an error.
func (s *Service) Clear(ctx context.Context, userID int64) (int64, error) {
	count, err := s.store.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear ledger: %w", err)
	}

	slog.InfoContext(ctx, "Ledger cleared", "user_id", userID, "count", count)

	if s.publisher != nil {
		if err := s.publisher.LedgerCleared(ctx, userID, count); err != nil {
			slog.ErrorContext(ctx, "Failed to publish ledger cleared event",
				"user_id", userID, "error", err)
		}
	}

	return count, nil
}

// Summary computes the total and per-category breakdown over a fresh
// snapshot of the user's ledger.
func (s *Service) Summary(ctx context.Context, userID int64) (core.Summary, error) {
	expenses, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list expenses: %w", err)
	}
	return core.Summarize(expenses)
}
