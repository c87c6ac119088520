package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/command"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// /start HANDLER
// Registers the user as a group member and greets them. Registration is
// idempotent: a returning user keeps their original join date and points.
// ══════════════════════════════════════════════════════════════════════════════

// StartRequest contains the /start command context.
type StartRequest struct {
	// TelegramID is the user's Telegram ID.
	TelegramID int64

	// Username is the user's Telegram username (may be empty).
	Username string

	// FirstName is the user's first name.
	FirstName string

	// LastName is the user's last name (may be empty).
	LastName string
}

// StartHandler handles the /start command.
type StartHandler struct {
	register *command.RegisterMemberHandler
	menus    *presenter.MenuPresenter
}

// NewStartHandler creates the handler.
func NewStartHandler(register *command.RegisterMemberHandler, menus *presenter.MenuPresenter) *StartHandler {
	return &StartHandler{register: register, menus: menus}
}

// Handle registers the member and returns the welcome screen.
func (h *StartHandler) Handle(ctx context.Context, req StartRequest) (*Response, error) {
	cmd := command.RegisterMemberCommand{
		TelegramID:  member.TelegramID(req.TelegramID),
		DisplayName: displayName(req),
	}

	if err := h.register.Handle(ctx, cmd); err != nil {
		return nil, fmt.Errorf("register member: %w", err)
	}

	return &Response{Text: h.menus.Welcome(req.FirstName)}, nil
}

// displayName prefers the username, falling back to the full name.
func displayName(req StartRequest) string {
	if req.Username != "" {
		return req.Username
	}
	if req.LastName != "" {
		return req.FirstName + " " + req.LastName
	}
	return req.FirstName
}
