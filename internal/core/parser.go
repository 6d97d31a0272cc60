package core

import "strings"

// Entry is a parsed "amount category" input line.
type Entry struct {
	Amount   Money
	Category string
}

// ParseEntry turns a raw text line into a validated Entry.
//
// The first whitespace-separated field must be a positive decimal number;
// everything after it is the category, trimmed and lowercased so that
// "Кава" and "кава" group together. Returns ErrInvalidAmount or
// ErrMissingCategory on rejection.
func ParseEntry(raw string) (Entry, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Entry{}, ErrInvalidAmount
	}

	cents, err := ParseDecimalToCents(fields[0])
	if err != nil {
		return Entry{}, err
	}

	category := strings.TrimSpace(strings.Join(fields[1:], " "))
	if category == "" {
		return Entry{}, ErrMissingCategory
	}

	return Entry{
		Amount:   Money{Cents: cents},
		Category: strings.ToLower(category),
	}, nil
}
