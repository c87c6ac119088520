// Package command contains write operations (CQRS - Commands).
// The only write path this bot owns is member registration; attendance,
// grades and announcements are recorded by collaborators outside the bot.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER MEMBER COMMAND
// Runs on the /start entry action. Idempotent: the first registration sets
// the joined-at timestamp and display name; every later /start is a no-op.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterMemberCommand contains the identity seen on the entry action.
type RegisterMemberCommand struct {
	// TelegramID is the user's Telegram ID.
	TelegramID member.TelegramID

	// DisplayName is the name to register on first contact.
	DisplayName string
}

// Validate checks the command.
func (c RegisterMemberCommand) Validate() error {
	if !c.TelegramID.IsValid() {
		return member.ErrInvalidTelegramID
	}
	if strings.TrimSpace(c.DisplayName) == "" {
		return member.ErrEmptyDisplayName
	}
	return nil
}

// RegisterMemberHandler handles member registration.
type RegisterMemberHandler struct {
	members member.Repository
	clock   timeutil.Clock
}

// NewRegisterMemberHandler creates the handler.
func NewRegisterMemberHandler(members member.Repository, clock timeutil.Clock) *RegisterMemberHandler {
	return &RegisterMemberHandler{members: members, clock: clock}
}

// Handle registers the member if unseen; otherwise does nothing.
func (h *RegisterMemberHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("register_member: %w", err)
	}

	m, err := member.NewMember(cmd.TelegramID, cmd.DisplayName, h.clock.Now())
	if err != nil {
		return fmt.Errorf("register_member: %w", err)
	}

	if err := h.members.Upsert(ctx, m); err != nil {
		return fmt.Errorf("register_member: upsert: %w", err)
	}

	return nil
}
