package core

import (
	"errors"
	"testing"
	"time"
)

func expense(cents int64, category string) Expense {
	return Expense{
		UserID:   1,
		Amount:   Money{Cents: cents},
		Category: category,
		Date:     time.Now(),
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]Expense{
		expense(1000, "a"),
		expense(2000, "b"),
		expense(3000, "a"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total.Cents != 6000 {
		t.Fatalf("expected total 6000, got %d", s.Total.Cents)
	}
	if len(s.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(s.Categories))
	}
	a, b := s.Categories[0], s.Categories[1]
	if a.Name != "a" || a.Amount.Cents != 4000 || a.Percent != 66.7 {
		t.Fatalf("unexpected first category: %+v", a)
	}
	if b.Name != "b" || b.Amount.Cents != 2000 || b.Percent != 33.3 {
		t.Fatalf("unexpected second category: %+v", b)
	}
	if a.Blocks != 7 || b.Blocks != 3 {
		t.Fatalf("unexpected blocks: a=%d b=%d", a.Blocks, b.Blocks)
	}
}

func TestSummarizeTiesKeepFirstSeenOrder(t *testing.T) {
	s, err := Summarize([]Expense{
		expense(1000, "кава"),
		expense(1000, "таксі"),
		expense(1000, "обід"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"кава", "таксі", "обід"}
	for i, cs := range s.Categories {
		if cs.Name != want[i] {
			t.Fatalf("position %d expected %q, got %q", i, want[i], cs.Name)
		}
	}
}

func TestSummarizeSingleCategory(t *testing.T) {
	s, err := Summarize([]Expense{expense(500, "кава")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cs := s.Categories[0]
	if cs.Percent != 100 || cs.Blocks != 10 {
		t.Fatalf("expected 100%% and 10 blocks, got %+v", cs)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("expected ErrEmptyLedger, got %v", err)
	}
}
