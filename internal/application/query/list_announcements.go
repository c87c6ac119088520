package query

import (
	"context"
	"fmt"

	"github.com/bahadir04/grupa247-bot/internal/domain/announcement"
)

// RecentLimit is how many entries every list report shows at most.
const RecentLimit = 5

// ListAnnouncementsHandler returns the latest announcements.
type ListAnnouncementsHandler struct {
	announcements announcement.Repository
}

// NewListAnnouncementsHandler creates the handler.
func NewListAnnouncementsHandler(a announcement.Repository) *ListAnnouncementsHandler {
	return &ListAnnouncementsHandler{announcements: a}
}

// Handle returns up to RecentLimit announcements, most recent first.
// An empty store yields an empty slice, never an error.
func (h *ListAnnouncementsHandler) Handle(ctx context.Context) ([]announcement.Announcement, error) {
	items, err := h.announcements.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list_announcements: %w", err)
	}
	return items, nil
}
