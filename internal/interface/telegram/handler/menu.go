package handler

import (
	"context"

	"github.com/bahadir04/grupa247-bot/internal/interface/telegram/presenter"
)

// MenuHandler renders the static screens: main menu, statistics submenu
// and the about page. No store reads are involved.
type MenuHandler struct {
	menus *presenter.MenuPresenter
}

// NewMenuHandler creates the handler.
func NewMenuHandler(menus *presenter.MenuPresenter) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// MainMenu renders the main menu screen.
func (h *MenuHandler) MainMenu(_ context.Context, _ Request) (*Response, error) {
	return &Response{Text: h.menus.MainMenu()}, nil
}

// StatisticsMenu renders the statistics submenu screen.
func (h *MenuHandler) StatisticsMenu(_ context.Context, _ Request) (*Response, error) {
	return &Response{Text: h.menus.StatisticsMenu()}, nil
}

// About renders the about screen.
func (h *MenuHandler) About(_ context.Context, _ Request) (*Response, error) {
	return &Response{Text: h.menus.About()}, nil
}
