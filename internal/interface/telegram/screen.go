package telegram

// ══════════════════════════════════════════════════════════════════════════════
// MENU STATE MACHINE
// The menu is a flat set of screens keyed by callback action. Every action
// maps to exactly one screen regardless of which screen the user is on, so
// there is no per-user navigation state to store. An action outside the
// table is ignored.
// ══════════════════════════════════════════════════════════════════════════════

// Screen identifies one menu screen.
type Screen string

const (
	ScreenMain             Screen = "main"
	ScreenStatsMenu        Screen = "stats_menu"
	ScreenMemberStats      Screen = "member_stats"
	ScreenAttendanceStats  Screen = "attendance_stats"
	ScreenPerformanceStats Screen = "performance_stats"
	ScreenActivityRanking  Screen = "activity_ranking"
	ScreenAnnouncements    Screen = "announcements"
	ScreenMembersList      Screen = "members_list"
	ScreenAttendanceList   Screen = "attendance_list"
	ScreenPerformanceList  Screen = "performance_list"
	ScreenAbout            Screen = "about"
)

// Layout selects which keyboard a screen carries.
type Layout int

const (
	// LayoutMain is the six-button section keyboard.
	LayoutMain Layout = iota

	// LayoutStats is the statistics keyboard with a back button.
	LayoutStats
)

// Callback actions as they appear in inline keyboard callback_data.
const (
	ActionStatistics       = "statistics"
	ActionMemberStats      = "members_stats"
	ActionAttendanceStats  = "attendance_stats"
	ActionPerformanceStats = "performance_stats"
	ActionActivityStats    = "activity_stats"
	ActionBackToMain       = "back_to_main"
	ActionAnnouncements    = "announcements"
	ActionMembers          = "members"
	ActionAttendance       = "attendance"
	ActionPerformance      = "performance"
	ActionAbout            = "about"
)

// transitions is the complete action table. Source screen is irrelevant:
// the same action always lands on the same screen.
var transitions = map[string]Screen{
	ActionStatistics:       ScreenStatsMenu,
	ActionMemberStats:      ScreenMemberStats,
	ActionAttendanceStats:  ScreenAttendanceStats,
	ActionPerformanceStats: ScreenPerformanceStats,
	ActionActivityStats:    ScreenActivityRanking,
	ActionBackToMain:       ScreenMain,
	ActionAnnouncements:    ScreenAnnouncements,
	ActionMembers:          ScreenMembersList,
	ActionAttendance:       ScreenAttendanceList,
	ActionPerformance:      ScreenPerformanceList,
	ActionAbout:            ScreenAbout,
}

// ScreenFor resolves a callback action to its target screen.
// The second return is false for unknown actions.
func ScreenFor(action string) (Screen, bool) {
	s, ok := transitions[action]
	return s, ok
}

// Layout returns which keyboard the screen carries. The statistics submenu
// and the four report screens keep the statistics keyboard so the user can
// flip between reports; everything else returns to the main keyboard.
func (s Screen) Layout() Layout {
	switch s {
	case ScreenStatsMenu, ScreenMemberStats, ScreenAttendanceStats,
		ScreenPerformanceStats, ScreenActivityRanking:
		return LayoutStats
	default:
		return LayoutMain
	}
}
