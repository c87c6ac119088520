package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bahadir04/grupa247-bot/internal/application/command"
	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/domain/shared"
	"github.com/bahadir04/grupa247-bot/internal/infrastructure/external/telegram"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/handler"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/middleware"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOT CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// BotConfig contains configuration for the Telegram bot.
type BotConfig struct {
	// Token is the Telegram Bot API token.
	Token string

	// PollingTimeout is the timeout for long polling (in seconds).
	PollingTimeout int

	// Debug enables debug logging.
	Debug bool

	// Logger for structured logging.
	Logger *slog.Logger

	// MaxConcurrentUpdates limits concurrent update processing.
	MaxConcurrentUpdates int

	// GracefulShutdownTimeout is the timeout for graceful shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultBotConfig returns sensible defaults.
func DefaultBotConfig(token string) BotConfig {
	return BotConfig{
		Token:                   token,
		PollingTimeout:          30,
		Logger:                  slog.Default(),
		MaxConcurrentUpdates:    100,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// BOT DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// BotDependencies contains the application-layer handlers the bot serves.
type BotDependencies struct {
	// Commands
	RegisterMemberCmd *command.RegisterMemberHandler

	// Queries
	MemberStatsQuery      *query.GetMemberStatsHandler
	AttendanceStatsQuery  *query.GetAttendanceStatsHandler
	PerformanceStatsQuery *query.GetPerformanceStatsHandler
	ActivityRankingQuery  query.ActivityRankingProvider
	AnnouncementsQuery    *query.ListAnnouncementsHandler
	MembersQuery          *query.ListMembersHandler
	AttendanceQuery       *query.ListAttendanceHandler
	PerformanceQuery      *query.ListPerformanceHandler
}

// ══════════════════════════════════════════════════════════════════════════════
// BOT
// ══════════════════════════════════════════════════════════════════════════════

// Bot is the main Telegram bot controller.
type Bot struct {
	config BotConfig
	client *telegram.Client
	router *Router
	logger *slog.Logger

	recovery *middleware.RecoveryMiddleware

	running   bool
	runningMu sync.RWMutex
	updateSem chan struct{}
	wg        sync.WaitGroup
}

// NewBot creates a new Telegram bot with all dependencies.
func NewBot(config BotConfig, deps BotDependencies) (*Bot, error) {
	if config.Token == "" {
		return nil, errors.New("telegram token is required")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.MaxConcurrentUpdates <= 0 {
		config.MaxConcurrentUpdates = 100
	}

	clientConfig := telegram.DefaultClientConfig(config.Token)
	clientConfig.Logger = config.Logger
	clientConfig.Debug = config.Debug
	clientConfig.PollingTimeout = config.PollingTimeout
	client := telegram.NewClient(clientConfig)

	keyboards := presenter.NewKeyboardBuilder()
	menus := presenter.NewMenuPresenter()
	stats := presenter.NewStatsPresenter()
	lists := presenter.NewListPresenter()

	handlers := RouterHandlers{
		Start:            handler.NewStartHandler(deps.RegisterMemberCmd, menus),
		Menu:             handler.NewMenuHandler(menus),
		MemberStats:      handler.NewMemberStatsHandler(deps.MemberStatsQuery, stats),
		AttendanceStats:  handler.NewAttendanceStatsHandler(deps.AttendanceStatsQuery, stats),
		PerformanceStats: handler.NewPerformanceStatsHandler(deps.PerformanceStatsQuery, stats),
		ActivityRanking:  handler.NewActivityRankingHandler(deps.ActivityRankingQuery, stats),
		Announcements:    handler.NewAnnouncementsHandler(deps.AnnouncementsQuery, lists),
		Members:          handler.NewMembersHandler(deps.MembersQuery, lists),
		Attendance:       handler.NewAttendanceHandler(deps.AttendanceQuery, lists),
		Performance:      handler.NewPerformanceHandler(deps.PerformanceQuery, lists),
	}

	router := NewRouter(RouterConfig{
		Logger: config.Logger,
		Debug:  config.Debug,
	}, handlers, keyboards)

	recoveryConfig := middleware.DefaultRecoveryConfig()
	recoveryConfig.Logger = config.Logger

	return &Bot{
		config:    config,
		client:    client,
		router:    router,
		logger:    config.Logger,
		recovery:  middleware.NewRecoveryMiddleware(recoveryConfig),
		updateSem: make(chan struct{}, config.MaxConcurrentUpdates),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LIFECYCLE
// ══════════════════════════════════════════════════════════════════════════════

// Start verifies the token and begins long polling. Blocks until the
// context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.runningMu.Lock()
	if b.running {
		b.runningMu.Unlock()
		return errors.New("bot is already running")
	}
	b.running = true
	b.runningMu.Unlock()

	b.logger.Info("starting telegram bot", "debug", b.config.Debug)

	me, err := b.client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("verify bot token: %w", err)
	}
	b.logger.Info("bot verified", "id", me.ID, "username", me.Username)

	return b.client.StartPolling(ctx, b.handleUpdate)
}

// Stop waits for in-flight handlers to finish, up to the configured timeout.
func (b *Bot) Stop(ctx context.Context) error {
	b.runningMu.Lock()
	if !b.running {
		b.runningMu.Unlock()
		return nil
	}
	b.running = false
	b.runningMu.Unlock()

	b.logger.Info("stopping telegram bot")

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("all handlers completed")
	case <-time.After(b.config.GracefulShutdownTimeout):
		b.logger.Warn("graceful shutdown timeout exceeded")
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// IsRunning returns whether the bot is currently running.
func (b *Bot) IsRunning() bool {
	b.runningMu.RLock()
	defer b.runningMu.RUnlock()
	return b.running
}

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE HANDLING
// ══════════════════════════════════════════════════════════════════════════════

// handleUpdate processes a single Telegram update. Each interaction gets a
// correlation id so a multi-line failure is traceable in the log.
func (b *Bot) handleUpdate(ctx context.Context, update *telegram.Update) error {
	select {
	case b.updateSem <- struct{}{}:
		defer func() { <-b.updateSem }()
	case <-ctx.Done():
		return ctx.Err()
	}

	b.wg.Add(1)
	defer b.wg.Done()

	logger := b.logger.With("interaction_id", uuid.NewString(), "update_id", update.UpdateID)

	switch {
	case update.Message != nil:
		return b.handleMessage(ctx, logger, update.Message)
	case update.CallbackQuery != nil:
		return b.handleCallbackQuery(ctx, logger, update.CallbackQuery)
	default:
		return nil
	}
}

// storeUnavailableMessage is shown when an interaction fails because the
// record store could not be reached. The failure is scoped to the one
// interaction, so the user is told to retry.
const storeUnavailableMessage = "😔 Ma'lumotlarni olishda xatolik yuz berdi. Birozdan keyin qayta urinib ko'ring."

// handleMessage processes a Telegram message. Only /start matters; every
// other message is ignored.
func (b *Bot) handleMessage(ctx context.Context, logger *slog.Logger, msg *telegram.Message) error {
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return nil
	}

	if telegram.ExtractCommand(msg) != "start" {
		return nil
	}

	telegramID := msg.From.ID
	logger.Info("handling /start", "telegram_id", telegramID)

	result := b.recovery.RecoverWithHandler(ctx, telegramID, "command:start", func() error {
		return b.router.HandleStart(ctx, CommandContext{
			TelegramID: telegramID,
			ChatID:     msg.Chat.ID,
			MessageID:  msg.MessageID,
			Message:    msg,
			Client:     b.client,
		})
	})

	if result.Recovered {
		_, err := b.client.SendMessage(ctx, telegram.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   result.UserMessage,
		})
		return err
	}
	if result.Err != nil {
		logger.Error("start handler failed", "error", result.Err)
		if errors.Is(result.Err, shared.ErrStoreUnavailable) {
			_, _ = b.client.SendMessage(ctx, telegram.SendMessageParams{
				ChatID: msg.Chat.ID,
				Text:   storeUnavailableMessage,
			})
		}
	}

	return result.Err
}

// handleCallbackQuery processes a callback query from the inline keyboard.
func (b *Bot) handleCallbackQuery(ctx context.Context, logger *slog.Logger, cq *telegram.CallbackQuery) error {
	if cq == nil || cq.From == nil {
		return nil
	}

	telegramID := cq.From.ID
	var chatID, messageID int64
	if cq.Message != nil && cq.Message.Chat != nil {
		chatID = cq.Message.Chat.ID
		messageID = cq.Message.MessageID
	}

	// Answer first to clear the client's loading state.
	if err := b.client.AnswerCallbackQuery(ctx, cq.ID, ""); err != nil {
		logger.Warn("failed to answer callback query", "error", err)
	}

	logger.Info("handling callback", "telegram_id", telegramID, "action", cq.Data)

	result := b.recovery.RecoverWithHandler(ctx, telegramID, "callback:"+cq.Data, func() error {
		return b.router.HandleCallback(ctx, CallbackContext{
			TelegramID: telegramID,
			ChatID:     chatID,
			MessageID:  messageID,
			QueryID:    cq.ID,
			Data:       cq.Data,
			Client:     b.client,
		})
	})

	if result.Recovered && chatID != 0 {
		_, _ = b.client.SendMessage(ctx, telegram.SendMessageParams{
			ChatID: chatID,
			Text:   result.UserMessage,
		})
		return nil
	}
	if result.Err != nil {
		logger.Error("callback handler failed", "action", cq.Data, "error", result.Err)
		if errors.Is(result.Err, shared.ErrStoreUnavailable) && chatID != 0 {
			_, _ = b.client.SendMessage(ctx, telegram.SendMessageParams{
				ChatID: chatID,
				Text:   storeUnavailableMessage,
			})
		}
	}

	return result.Err
}

// Client returns the Telegram client for direct API access.
func (b *Bot) Client() *telegram.Client {
	return b.client
}

// Router returns the router, mainly for tests.
func (b *Bot) Router() *Router {
	return b.router
}
