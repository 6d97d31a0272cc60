// Package format renders domain results into the fixed user-facing
// messages the bot replies with. No other package builds reply text.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"vytraty/internal/core"
)

// Operation selects the fallback failure message for errors that carry
// no domain meaning (storage failures and the like).
type Operation string

const (
	OpAdd    Operation = "add"
	OpList   Operation = "list"
	OpDelete Operation = "delete"
	OpClear  Operation = "clear"
	OpStats  Operation = "stats"
)

const (
	greeting = "Привіт! 👋 Я онлайн 24/7.\n\n" +
		"Твій фінансовий помічник готовий.\n\n" +
		"📌 **Як користуватись:**\n" +
		"Пиши: `100 кава` (сума пробіл категорія)\n\n" +
		"📊 /stats - аналітика витрат\n" +
		"📋 /list - список усіх витрат\n" +
		"🗑 /delete 1 - видалити запис номер 1\n" +
		"🧨 /clear - видалити все"

	emptyList     = "📭 Список порожній."
	emptyStats    = "📭 Немає даних для статистики. Додай витрати!"
	badEntry      = "❌ Формат: 100 кава\nКоманди: /stats, /list, /delete номер"
	noSuchNumber  = "⚠️ Такого номеру немає."
	deleteUsage   = "⚠️ Вкажи номер. Приклад: /delete 1"
	addFailure    = "Помилка запису"
	listFailure   = "Помилка списку"
	deleteFailure = "Помилка видалення"
	clearFailure  = "Помилка очищення"
	statsFailure  = "❌ Помилка при розрахунку статистики."
)

// Greeting is the /start and /help reply.
func Greeting() string {
	return greeting
}

// List renders the numbered ascending-by-date expense list with a
// trailing total line.
func List(expenses []core.Expense, total core.Money) string {
	if len(expenses) == 0 {
		return emptyList
	}

	var b strings.Builder
	b.WriteString("📋 **Твої витрати:**\n\n")
	for i, e := range expenses {
		fmt.Fprintf(&b, "%d. [%s] %s грн — %s\n",
			i+1, e.Date.Format("02.01"), e.Amount.Format(), e.Category)
	}
	fmt.Fprintf(&b, "\n💰 **Всього:** %s грн", total.Format())
	return b.String()
}

// Summary renders the total plus one block per category in the
// aggregator's order: bar, percent, uppercased name, sum.
func Summary(s core.Summary) string {
	var b strings.Builder
	b.WriteString("📊 **Аналітика витрат:**\n\n")
	fmt.Fprintf(&b, "💰 **Всього:** %s грн\n\n", s.Total.Format())
	for _, cs := range s.Categories {
		bar := strings.Repeat("🟦", cs.Blocks)
		fmt.Fprintf(&b, "%s %s%%\n**%s**: %s грн\n\n",
			bar,
			strconv.FormatFloat(cs.Percent, 'f', 1, 64),
			strings.ToUpper(cs.Name),
			cs.Amount.Format())
	}
	return b.String()
}

func AddConfirmation(e core.Expense) string {
	return fmt.Sprintf("✅ Записано: %s грн на %q", e.Amount.Format(), e.Category)
}

func DeleteConfirmation(e core.Expense) string {
	return fmt.Sprintf("✅ Видалено: %s грн — %s", e.Amount.Format(), e.Category)
}

func ClearConfirmation(count int64) string {
	return fmt.Sprintf("🗑 Все видалено. Записів: %d.", count)
}

// DeleteUsage is the reply for /delete without a usable number.
func DeleteUsage() string {
	return deleteUsage
}

// Error maps an error from operation op to its fixed user-facing
// message. Domain errors get their specific hint; anything else falls
// back to the operation's generic failure line.
func Error(op Operation, err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrMissingCategory):
		return badEntry
	case errors.Is(err, core.ErrInvalidPosition):
		return noSuchNumber
	case errors.Is(err, core.ErrEmptyLedger):
		if op == OpStats {
			return emptyStats
		}
		return emptyList
	}

	switch op {
	case OpAdd:
		return addFailure
	case OpList:
		return listFailure
	case OpDelete:
		return deleteFailure
	case OpClear:
		return clearFailure
	case OpStats:
		return statsFailure
	default:
		return statsFailure
	}
}
