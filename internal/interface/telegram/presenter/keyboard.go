// Package presenter formats data for Telegram display.
// Presenters handle the conversion from query results to user-facing
// message texts and inline keyboards. All user-facing strings live here.
package presenter

// ══════════════════════════════════════════════════════════════════════════════
// INLINE KEYBOARD TYPES
// These types represent Telegram inline keyboards in a library-agnostic way.
// The bot layer converts them to the wire format.
// ══════════════════════════════════════════════════════════════════════════════

// InlineKeyboard represents an inline keyboard.
type InlineKeyboard struct {
	Rows [][]InlineButton
}

// InlineButton represents a single inline button.
type InlineButton struct {
	// Text is the button text.
	Text string

	// CallbackData is the callback data (for callback buttons).
	CallbackData string

	// URL is the URL to open (for URL buttons).
	URL string
}

// NewInlineKeyboard creates a new empty inline keyboard.
func NewInlineKeyboard() *InlineKeyboard {
	return &InlineKeyboard{
		Rows: make([][]InlineButton, 0),
	}
}

// AddRow adds a row of buttons.
func (k *InlineKeyboard) AddRow(buttons ...InlineButton) *InlineKeyboard {
	k.Rows = append(k.Rows, buttons)
	return k
}

// CallbackButton creates a callback button.
func CallbackButton(text, callbackData string) InlineButton {
	return InlineButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// KEYBOARD BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// KeyboardBuilder builds the bot's two inline keyboards.
type KeyboardBuilder struct{}

// NewKeyboardBuilder creates a new KeyboardBuilder.
func NewKeyboardBuilder() *KeyboardBuilder {
	return &KeyboardBuilder{}
}

// MainMenuKeyboard creates the six-button section keyboard.
func (b *KeyboardBuilder) MainMenuKeyboard() *InlineKeyboard {
	return NewInlineKeyboard().
		AddRow(
			CallbackButton("📊 Statistika", "statistics"),
			CallbackButton("📢 E'lonlar", "announcements"),
		).
		AddRow(
			CallbackButton("👥 A'zolar", "members"),
			CallbackButton("📝 Davomat", "attendance"),
		).
		AddRow(
			CallbackButton("📈 O'zlashtirish", "performance"),
			CallbackButton("ℹ️ Ma'lumot", "about"),
		)
}

// StatisticsKeyboard creates the statistics submenu keyboard.
func (b *KeyboardBuilder) StatisticsKeyboard() *InlineKeyboard {
	return NewInlineKeyboard().
		AddRow(
			CallbackButton("👥 A'zolar statistikasi", "members_stats"),
			CallbackButton("📝 Davomat statistikasi", "attendance_stats"),
		).
		AddRow(
			CallbackButton("📊 O'zlashtirish statistikasi", "performance_stats"),
			CallbackButton("⭐️ Faollik reytingi", "activity_stats"),
		).
		AddRow(
			CallbackButton("🔙 Orqaga", "back_to_main"),
		)
}
