package handler

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/application/query"
	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// MembersHandler renders the full member roster screen.
type MembersHandler struct {
	list    *query.ListMembersHandler
	present *presenter.ListPresenter
}

// NewMembersHandler creates the handler.
func NewMembersHandler(list *query.ListMembersHandler, present *presenter.ListPresenter) *MembersHandler {
	return &MembersHandler{list: list, present: present}
}

// Handle loads and formats the member roster in join order.
func (h *MembersHandler) Handle(ctx context.Context, _ Request) (*Response, error) {
	names, err := h.list.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("members list: %w", err)
	}
	return &Response{Text: h.present.Members(names)}, nil
}
