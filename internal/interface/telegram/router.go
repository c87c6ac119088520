// Package telegram implements the Telegram interface of the group bot.
// It is the entry point for all Telegram interactions: receiving updates,
// resolving callback actions through the menu state machine, and rendering
// screens back into the single menu message.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bahadir04/grupa247-bot/internal/infrastructure/external/telegram"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/handler"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// RouterConfig contains configuration for the router.
type RouterConfig struct {
	// Logger for structured logging.
	Logger *slog.Logger

	// Debug enables debug logging for routing decisions.
	Debug bool
}

// ══════════════════════════════════════════════════════════════════════════════
// CONTEXT TYPES
// ══════════════════════════════════════════════════════════════════════════════

// CommandContext contains context for command handling.
type CommandContext struct {
	// TelegramID is the user's Telegram ID.
	TelegramID int64

	// ChatID is the chat ID where the command was sent.
	ChatID int64

	// MessageID is the ID of the message containing the command.
	MessageID int64

	// Message is the original Telegram message.
	Message *telegram.Message

	// Client is the Telegram client for sending responses.
	Client *telegram.Client
}

// CallbackContext contains context for callback query handling.
type CallbackContext struct {
	// TelegramID is the user's Telegram ID.
	TelegramID int64

	// ChatID is the chat ID where the callback originated.
	ChatID int64

	// MessageID is the ID of the message with the inline keyboard.
	MessageID int64

	// QueryID is the callback query ID (for answering).
	QueryID string

	// Data is the callback action string.
	Data string

	// Client is the Telegram client for sending responses.
	Client *telegram.Client
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER
// Resolves actions via the screen table and renders the target screen into
// the menu message. The screen set is fixed at construction, so there is
// no runtime registration.
// ══════════════════════════════════════════════════════════════════════════════

// RouterHandlers aggregates the screen handlers the router dispatches to.
type RouterHandlers struct {
	Start            *handler.StartHandler
	Menu             *handler.MenuHandler
	MemberStats      *handler.MemberStatsHandler
	AttendanceStats  *handler.AttendanceStatsHandler
	PerformanceStats *handler.PerformanceStatsHandler
	ActivityRanking  *handler.ActivityRankingHandler
	Announcements    *handler.AnnouncementsHandler
	Members          *handler.MembersHandler
	Attendance       *handler.AttendanceHandler
	Performance      *handler.PerformanceHandler
}

// Router routes Telegram updates to screen handlers.
type Router struct {
	config    RouterConfig
	logger    *slog.Logger
	handlers  RouterHandlers
	keyboards *presenter.KeyboardBuilder
}

// NewRouter creates a new router.
func NewRouter(config RouterConfig, handlers RouterHandlers, keyboards *presenter.KeyboardBuilder) *Router {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Router{
		config:    config,
		logger:    config.Logger,
		handlers:  handlers,
		keyboards: keyboards,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTING
// ══════════════════════════════════════════════════════════════════════════════

// HandleStart handles the /start command: register the member and send the
// welcome screen with the main keyboard as a new message.
func (r *Router) HandleStart(ctx context.Context, cmdCtx CommandContext) error {
	req := handler.StartRequest{TelegramID: cmdCtx.TelegramID}
	if cmdCtx.Message != nil && cmdCtx.Message.From != nil {
		req.Username = cmdCtx.Message.From.Username
		req.FirstName = cmdCtx.Message.From.FirstName
		req.LastName = cmdCtx.Message.From.LastName
	}

	resp, err := r.handlers.Start.Handle(ctx, req)
	if err != nil {
		return err
	}

	return r.sendResponse(ctx, cmdCtx.Client, cmdCtx.ChatID, resp.Text, r.keyboards.MainMenuKeyboard())
}

// HandleCallback resolves the callback action and edits the menu message in
// place. Actions outside the screen table are ignored.
func (r *Router) HandleCallback(ctx context.Context, cbCtx CallbackContext) error {
	screen, ok := ScreenFor(cbCtx.Data)
	if !ok {
		if r.config.Debug {
			r.logger.Debug("ignoring unknown callback action", "data", cbCtx.Data)
		}
		return nil
	}

	resp, err := r.renderScreen(ctx, screen, cbCtx)
	if err != nil {
		return err
	}

	return r.editResponse(ctx, cbCtx.Client, cbCtx.ChatID, cbCtx.MessageID, resp.Text, r.keyboardFor(screen))
}

// renderScreen dispatches a screen to its handler.
func (r *Router) renderScreen(ctx context.Context, screen Screen, cbCtx CallbackContext) (*handler.Response, error) {
	req := handler.Request{
		TelegramID: cbCtx.TelegramID,
		ChatID:     cbCtx.ChatID,
		MessageID:  cbCtx.MessageID,
	}

	switch screen {
	case ScreenMain:
		return r.handlers.Menu.MainMenu(ctx, req)
	case ScreenStatsMenu:
		return r.handlers.Menu.StatisticsMenu(ctx, req)
	case ScreenMemberStats:
		return r.handlers.MemberStats.Handle(ctx, req)
	case ScreenAttendanceStats:
		return r.handlers.AttendanceStats.Handle(ctx, req)
	case ScreenPerformanceStats:
		return r.handlers.PerformanceStats.Handle(ctx, req)
	case ScreenActivityRanking:
		return r.handlers.ActivityRanking.Handle(ctx, req)
	case ScreenAnnouncements:
		return r.handlers.Announcements.Handle(ctx, req)
	case ScreenMembersList:
		return r.handlers.Members.Handle(ctx, req)
	case ScreenAttendanceList:
		return r.handlers.Attendance.Handle(ctx, req)
	case ScreenPerformanceList:
		return r.handlers.Performance.Handle(ctx, req)
	case ScreenAbout:
		return r.handlers.Menu.About(ctx, req)
	default:
		return nil, fmt.Errorf("no handler for screen %q", screen)
	}
}

// keyboardFor picks the keyboard a screen carries per the menu layout.
func (r *Router) keyboardFor(screen Screen) *presenter.InlineKeyboard {
	if screen.Layout() == LayoutStats {
		return r.keyboards.StatisticsKeyboard()
	}
	return r.keyboards.MainMenuKeyboard()
}

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// sendResponse sends a new message with an inline keyboard.
func (r *Router) sendResponse(
	ctx context.Context,
	client *telegram.Client,
	chatID int64,
	text string,
	keyboard *presenter.InlineKeyboard,
) error {
	params := telegram.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: convertKeyboard(keyboard),
	}

	_, err := client.SendMessage(ctx, params)
	return err
}

// editResponse edits an existing message with an inline keyboard.
func (r *Router) editResponse(
	ctx context.Context,
	client *telegram.Client,
	chatID, messageID int64,
	text string,
	keyboard *presenter.InlineKeyboard,
) error {
	_, err := client.EditMessageText(ctx, chatID, messageID, text, "", convertKeyboard(keyboard))
	return err
}

// convertKeyboard converts presenter.InlineKeyboard to the wire format.
func convertKeyboard(kb *presenter.InlineKeyboard) *telegram.InlineKeyboardMarkup {
	if kb == nil || len(kb.Rows) == 0 {
		return nil
	}

	markup := &telegram.InlineKeyboardMarkup{
		InlineKeyboard: make([][]telegram.InlineKeyboardButton, len(kb.Rows)),
	}

	for i, row := range kb.Rows {
		markup.InlineKeyboard[i] = make([]telegram.InlineKeyboardButton, len(row))
		for j, btn := range row {
			markup.InlineKeyboard[i][j] = telegram.InlineKeyboardButton{
				Text:         btn.Text,
				CallbackData: btn.CallbackData,
				URL:          btn.URL,
			}
		}
	}

	return markup
}
