package events

import (
	"encoding/json"
	"time"
)

const (
	KindRecorded = "recorded"
	KindDeleted  = "deleted"
	KindCleared  = "cleared"
)

// ExpenseEvent describes a single ledger mutation. For "cleared" events
// Count carries the number of removed records and the per-record fields
// stay zero.
type ExpenseEvent struct {
	Kind        string    `json:"kind"`
	ID          int64     `json:"id,omitempty"`
	UserID      int64     `json:"user_id"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	Category    string    `json:"category,omitempty"`
	Count       int64     `json:"count,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var e ExpenseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
