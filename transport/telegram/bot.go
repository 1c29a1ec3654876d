package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doshicc/sirius-bot/internal/domain"
	"github.com/doshicc/sirius-bot/internal/usecase"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Bot struct {
	client    *bot.Bot
	reminders *usecase.ReminderUsecase
	now       func() time.Time
}

func NewBot(reminders *usecase.ReminderUsecase) *Bot {
	return &Bot{
		reminders: reminders,
		now:       time.Now,
	}
}

// AddClient attaches the Telegram client. Must be called before Start;
// the client itself needs the Bot's handlers at construction time.
func (b *Bot) AddClient(botClient *bot.Bot) {
	b.client = botClient
}

func (b *Bot) Start(ctx context.Context) {
	b.client.Start(ctx)
}

func (b *Bot) RegisterHandlers() {
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, b.HandleStart)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, b.HandleHelp)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/schedule", bot.MatchTypeExact, b.HandleSchedule)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/add", bot.MatchTypePrefix, b.HandleAdd)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypeExact, b.HandleToday)
	b.client.RegisterHandler(bot.HandlerTypeMessageText, "/tomorrow", bot.MatchTypeExact, b.HandleTomorrow)
}

func (b *Bot) HandleStart(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	b.send(ctx, update.Message.Chat.ID, textGreeting, createKeyboard("/help", "/schedule"))
}

func (b *Bot) HandleHelp(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	b.send(ctx, update.Message.Chat.ID, textHelp, createKeyboard("/today", "/tomorrow"))
}

func (b *Bot) HandleSchedule(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	b.send(ctx, update.Message.Chat.ID, textSchedule, nil)
}

func (b *Bot) HandleAdd(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	name, date, tm, ok := parseAddCommand(update.Message.Text)
	if !ok {
		b.send(ctx, chatID, textBadCommand, nil)
		return
	}

	switch b.reminders.Add(ctx, chatID, name, date, tm) {
	case domain.DateTimeOK:
		b.send(ctx, chatID, textAdded, createKeyboard("/help", "/today"))
	case domain.DateTimeTooSoon:
		b.send(ctx, chatID, textTooSoon, nil)
	case domain.DateTimeInPast:
		slog.Info("reminder rejected, date in past", "user_id", chatID)
		b.send(ctx, chatID, textInPast, nil)
	case domain.DateTimeMalformed:
		slog.Info("reminder rejected, bad date", "user_id", chatID)
		b.send(ctx, chatID, textBadDateTime, nil)
	}
}

func (b *Bot) HandleToday(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	today := b.now().Format(domain.DateLayout)

	events := b.reminders.ListForDate(ctx, chatID, today)
	if len(events) == 0 {
		b.send(ctx, chatID, textNothingToday, nil)
		return
	}
	b.send(ctx, chatID, formatEventList(textListToday, events), nil)
}

func (b *Bot) HandleTomorrow(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	tomorrow := b.now().AddDate(0, 0, 1).Format(domain.DateLayout)

	events := b.reminders.ListForDate(ctx, chatID, tomorrow)
	if len(events) == 0 {
		b.send(ctx, chatID, textNothingTomorrow, nil)
		return
	}
	b.send(ctx, chatID, formatEventList(textListTomorrow, events), nil)
}

// DefaultHandler answers any non-command text with a pointer at /help.
func (b *Bot) DefaultHandler(ctx context.Context, botClient *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.send(ctx, update.Message.Chat.ID, textUnknown, nil)
}

// SendReminder is the scheduler's notify callback: the one-hour warning.
// A failed send is logged and not requeued.
func (b *Bot) SendReminder(ctx context.Context, userID int64, name string) {
	b.send(ctx, userID, fmt.Sprintf(textReminder, name), nil)
}

func (b *Bot) send(ctx context.Context, chatID int64, text string, keyboard *models.ReplyKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}
	if _, err := b.client.SendMessage(ctx, params); err != nil {
		slog.Error("send failed", "err", err, "chat_id", chatID)
	}
}
