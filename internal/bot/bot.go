// Package bot is the Discord transport: it routes inbound messages to
// ledger operations and replies with formatter output. Every domain
// error stops here.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"vytraty/internal/format"
	"vytraty/internal/ledger"
)

const handleTimeout = 10 * time.Second

type Bot struct {
	session   *discordgo.Session
	ledger    *ledger.Service
	channelID string
}

// New creates a Discord bot bound to the given ledger service. An empty
// channelID means the bot answers in any channel it can read.
func New(token, channelID string, svc *ledger.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}

	bot := &Bot{
		session:   session,
		ledger:    svc,
		channelID: channelID,
	}

	session.AddHandler(bot.handleMessage)
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open Discord connection: %w", err)
	}
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return // bot's own messages
	}
	if b.channelID != "" && m.ChannelID != b.channelID {
		return
	}

	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		slog.Error("Non-numeric author id", "author_id", m.Author.ID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	reply := b.respond(ctx, userID, m.Content)
	if reply == "" {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		slog.ErrorContext(ctx, "Failed to send reply",
			"channel_id", m.ChannelID, "user_id", userID, "error", err)
	}
}

// respond runs one inbound message to completion and returns the reply
// text. It never returns domain errors; they are rendered by the
// formatter here.
func (b *Bot) respond(ctx context.Context, userID int64, content string) string {
	cmd, arg := route(content)

	switch cmd {
	case cmdStart:
		return format.Greeting()

	case cmdStats:
		summary, err := b.ledger.Summary(ctx, userID)
		if err != nil {
			b.logDomainless(ctx, "stats", userID, err)
			return format.Error(format.OpStats, err)
		}
		return format.Summary(summary)

	case cmdList:
		expenses, total, err := b.ledger.List(ctx, userID)
		if err != nil {
			b.logDomainless(ctx, "list", userID, err)
			return format.Error(format.OpList, err)
		}
		return format.List(expenses, total)

	case cmdDelete:
		position, err := strconv.Atoi(arg)
		if err != nil {
			return format.DeleteUsage()
		}
		deleted, err := b.ledger.DeleteAt(ctx, userID, position)
		if err != nil {
			b.logDomainless(ctx, "delete", userID, err)
			return format.Error(format.OpDelete, err)
		}
		return format.DeleteConfirmation(deleted)

	case cmdClear:
		count, err := b.ledger.Clear(ctx, userID)
		if err != nil {
			b.logDomainless(ctx, "clear", userID, err)
			return format.Error(format.OpClear, err)
		}
		return format.ClearConfirmation(count)

	default:
		saved, err := b.ledger.Add(ctx, userID, content)
		if err != nil {
			b.logDomainless(ctx, "add", userID, err)
			return format.Error(format.OpAdd, err)
		}
		return format.AddConfirmation(saved)
	}
}

// logDomainless logs errors that are not part of the domain taxonomy,
// so storage trouble stays visible to the operator while the user only
// sees the fixed failure message.
func (b *Bot) logDomainless(ctx context.Context, op string, userID int64, err error) {
	if isDomainError(err) {
		return
	}
	slog.ErrorContext(ctx, "Operation failed",
		"operation", op, "user_id", userID, "error", err)
}
