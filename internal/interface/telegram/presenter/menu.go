package presenter

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// STATIC MENU TEXTS
// ─────────────────────────────────────────────────────────────────────────────

// MenuPresenter formats the static menu screens.
type MenuPresenter struct{}

// NewMenuPresenter creates a new MenuPresenter.
func NewMenuPresenter() *MenuPresenter {
	return &MenuPresenter{}
}

// Welcome formats the /start greeting for a user.
func (p *MenuPresenter) Welcome(firstName string) string {
	return fmt.Sprintf(
		"Assalomu alaykum, %s! 👋\n\n"+
			"24.7-gruppa botina xush kelibsiz!\n\n"+
			"Bot imkoniyatlari:\n"+
			"📢 reklama korinisi\n"+
			"👥 Guruppa doslari haqqinda malomat\n"+
			"ℹ️ Gurppa haqqinda malumat\n"+
			"📝 Botdan paydalamiw qagiydasi\n\n"+
			"tomendegi tuymelerden paydalanin 👇",
		firstName,
	)
}

// MainMenu formats the main menu screen.
func (p *MenuPresenter) MainMenu() string {
	return "Asosiy menyu\n\n" +
		"Quyidagi bo'limlardan birini tanlang 👇"
}

// StatisticsMenu formats the statistics submenu screen.
func (p *MenuPresenter) StatisticsMenu() string {
	return "📊 Statistika bo'limi\n\n" +
		"Quyidagi statistikalarni ko'rishingiz mumkin:\n" +
		"👥 A'zolar statistikasi\n" +
		"📝 Davomat statistikasi\n" +
		"📊 O'zlashtirish statistikasi\n" +
		"⭐️ Faollik reytingi"
}

// About formats the about screen.
func (p *MenuPresenter) About() string {
	return "ℹ️ Guruh haqida:\n\n" +
		"📚 247-guruh\n" +
		"👨‍🎓 2024-yil talabalari\n" +
		"📱 Guruh boti orqali siz:\n" +
		"  • E'lonlarni ko'rishingiz\n" +
		"  • A'zolar ro'yxatini ko'rishingiz\n" +
		"  • Ma'lumotlar olishingiz mumkin"
}
