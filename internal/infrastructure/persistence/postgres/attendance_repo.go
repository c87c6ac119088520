package postgres

import (
	"context"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/attendance"
	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTENDANCE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// AttendanceRepository implements attendance.Repository for PostgreSQL.
type AttendanceRepository struct {
	conn *Connection
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(conn *Connection) *AttendanceRepository {
	return &AttendanceRepository{conn: conn}
}

// TallyBetween counts present and total entries in [from, to).
// Both counts come from one statement so they never straddle a write.
func (r *AttendanceRepository) TallyBetween(ctx context.Context, from, to time.Time) (attendance.DayTally, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*)
		FROM attendance_entries
		WHERE occurred_at >= $2 AND occurred_at < $3
	`

	var tally attendance.DayTally
	err := r.conn.QueryRow(ctx, query, string(attendance.StatusPresent), from, to).
		Scan(&tally.Present, &tally.Total)
	if err != nil {
		return attendance.DayTally{}, storeError("attendance", "TallyBetween", "failed to tally attendance", err)
	}

	return tally, nil
}

// ListRecent returns up to limit entries, most recent insertion first.
func (r *AttendanceRepository) ListRecent(ctx context.Context, limit int) ([]attendance.Entry, error) {
	query := `
		SELECT id, member_id, occurred_at, status
		FROM attendance_entries
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError("attendance", "ListRecent", "failed to list attendance entries", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		var (
			e        attendance.Entry
			memberID int64
			status   string
		)
		if err := rows.Scan(&e.ID, &memberID, &e.OccurredAt, &status); err != nil {
			return nil, storeError("attendance", "ListRecent", "failed to scan attendance entry", err)
		}
		e.MemberID = member.TelegramID(memberID)
		e.Status = attendance.Status(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("attendance", "ListRecent", "failed to read attendance entries", err)
	}

	return entries, nil
}
