package format

import (
	"errors"
	"strings"
	"testing"
	"time"

	"vytraty/internal/core"
)

func TestListRendersEntriesAndTotal(t *testing.T) {
	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	out := List([]core.Expense{
		{ID: 1, UserID: 7, Amount: core.Money{Cents: 15000}, Category: "таксі", Date: when},
		{ID: 2, UserID: 7, Amount: core.Money{Cents: 4050}, Category: "кава", Date: when.Add(time.Hour)},
	}, core.Money{Cents: 19050})

	for _, want := range []string{
		"1. [01.03] 150 грн — таксі",
		"2. [01.03] 40.50 грн — кава",
		"💰 **Всього:** 190.50 грн",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestListEmpty(t *testing.T) {
	if out := List(nil, core.Money{}); out != "📭 Список порожній." {
		t.Fatalf("unexpected empty-list message: %q", out)
	}
}

func TestSummaryRendering(t *testing.T) {
	out := Summary(core.Summary{
		Total: core.Money{Cents: 6000},
		Categories: []core.CategoryShare{
			{Name: "a", Amount: core.Money{Cents: 4000}, Percent: 66.7, Blocks: 7},
			{Name: "b", Amount: core.Money{Cents: 2000}, Percent: 33.3, Blocks: 3},
		},
	})

	for _, want := range []string{
		"💰 **Всього:** 60 грн",
		strings.Repeat("🟦", 7) + " 66.7%",
		"**A**: 40 грн",
		strings.Repeat("🟦", 3) + " 33.3%",
		"**B**: 20 грн",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "**A**") > strings.Index(out, "**B**") {
		t.Fatalf("categories out of order:\n%s", out)
	}
}

func TestConfirmations(t *testing.T) {
	e := core.Expense{Amount: core.Money{Cents: 15000}, Category: "таксі"}
	if got := AddConfirmation(e); !strings.Contains(got, "150 грн") || !strings.Contains(got, "таксі") {
		t.Fatalf("unexpected add confirmation: %q", got)
	}
	if got := DeleteConfirmation(e); got != "✅ Видалено: 150 грн — таксі" {
		t.Fatalf("unexpected delete confirmation: %q", got)
	}
	if got := ClearConfirmation(3); !strings.Contains(got, "3") {
		t.Fatalf("unexpected clear confirmation: %q", got)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		op   Operation
		err  error
		want string
	}{
		{OpAdd, core.ErrInvalidAmount, "❌ Формат: 100 кава\nКоманди: /stats, /list, /delete номер"},
		{OpAdd, core.ErrMissingCategory, "❌ Формат: 100 кава\nКоманди: /stats, /list, /delete номер"},
		{OpDelete, core.ErrInvalidPosition, "⚠️ Такого номеру немає."},
		{OpStats, core.ErrEmptyLedger, "📭 Немає даних для статистики. Додай витрати!"},
		{OpAdd, errors.New("db down"), "Помилка запису"},
		{OpList, errors.New("db down"), "Помилка списку"},
		{OpDelete, errors.New("db down"), "Помилка видалення"},
		{OpStats, errors.New("db down"), "❌ Помилка при розрахунку статистики."},
	}
	for _, tc := range cases {
		if got := Error(tc.op, tc.err); got != tc.want {
			t.Fatalf("Error(%s, %v) = %q, want %q", tc.op, tc.err, got, tc.want)
		}
	}
}
