package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// AnnouncementsHandler renders the recent announcements screen.
type AnnouncementsHandler struct {
	list    *query.ListAnnouncementsHandler
	present *presenter.ListPresenter
}

// NewAnnouncementsHandler creates the handler.
func NewAnnouncementsHandler(list *query.ListAnnouncementsHandler, present *presenter.ListPresenter) *AnnouncementsHandler {
	return &AnnouncementsHandler{list: list, present: present}
}

// Handle loads and formats the newest announcements.
func (h *AnnouncementsHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	items, err := h.list.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("announcements: %w", err)
	}
	return &Response{Text: h.present.Announcements(items)}, nil
}
