package bot

import (
	"errors"
	"strings"

	"vytraty/internal/core"
)

type command int

const (
	cmdAdd command = iota // catch-all: any plain text is an add attempt
	cmdStart
	cmdStats
	cmdList
	cmdDelete
	cmdClear
)

// route classifies an inbound message. Slash-prefixed recognized
// commands map to their operation, `/delete` keeps its argument;
// everything else, recognized or not, is an add attempt.
func route(content string) (command, string) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "/") {
		return cmdAdd, ""
	}

	fields := strings.Fields(trimmed)
	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	arg := strings.Join(fields[1:], " ")

	switch name {
	case "start", "help":
		return cmdStart, ""
	case "stats":
		return cmdStats, ""
	case "list":
		return cmdList, ""
	case "delete":
		return cmdDelete, arg
	case "clear":
		return cmdClear, ""
	default:
		return cmdAdd, ""
	}
}

func isDomainError(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrMissingCategory) ||
		errors.Is(err, core.ErrInvalidPosition) ||
		errors.Is(err, core.ErrEmptyLedger)
}
