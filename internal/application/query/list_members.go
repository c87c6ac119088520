package query

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// ListMembersHandler returns the full member roster.
type ListMembersHandler struct {
	members member.Repository
}

// NewListMembersHandler creates the handler.
func NewListMembersHandler(m member.Repository) *ListMembersHandler {
	return &ListMembersHandler{members: m}
}

// Handle returns all member display names in join order.
func (h *ListMembersHandler) Handle(ctx context.Context) ([]string, error) {
	names, err := h.members.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_members: %w", err)
	}
	return names, nil
}
