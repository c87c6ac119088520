// Package handler contains one screen handler per menu screen.
// Handlers run the query behind a screen and hand the formatted body text
// back to the router; which keyboard the screen carries is decided by the
// menu state machine, not here.
package handler

// Request identifies the interaction a screen is rendered for.
type Request struct {
	// TelegramID is the user's Telegram ID.
	TelegramID int64

	// ChatID is the chat the screen is shown in.
	ChatID int64

	// MessageID is the menu message being edited.
	MessageID int64
}

// Response is a rendered screen body.
type Response struct {
	// Text is the screen text, ready to send.
	Text string
}
