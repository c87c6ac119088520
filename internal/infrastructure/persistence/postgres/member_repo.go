package postgres

import (
	"context"
	"time"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
)

// ══════════════════════════════════════════════════════════════════════════════
// MEMBER REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// MemberRepository implements member.Repository for PostgreSQL.
type MemberRepository struct {
	conn *Connection
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(conn *Connection) *MemberRepository {
	return &MemberRepository{conn: conn}
}

// Upsert inserts the member if absent. ON CONFLICT DO NOTHING keeps the
// first-seen joined_at and display_name; a repeat registration is a no-op.
func (r *MemberRepository) Upsert(ctx context.Context, m *member.Member) error {
	query := `
		INSERT INTO members (telegram_id, display_name, joined_at, is_admin, attendance_rate, activity_points)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (telegram_id) DO NOTHING
	`

	_, err := r.conn.Exec(ctx, query,
		int64(m.TelegramID),
		m.DisplayName,
		m.JoinedAt,
		m.IsAdmin,
		float64(m.AttendanceRate),
		int(m.ActivityPoints),
	)
	if err != nil {
		return storeError("member", "Upsert", "failed to upsert member", err)
	}

	return nil
}

// Count returns the total number of members.
func (r *MemberRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM members`).Scan(&count)
	if err != nil {
		return 0, storeError("member", "Count", "failed to count members", err)
	}
	return count, nil
}

// CountJoinedBetween counts members whose joined_at falls in [from, to).
func (r *MemberRepository) CountJoinedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM members WHERE joined_at >= $1 AND joined_at < $2`

	var count int
	if err := r.conn.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		return 0, storeError("member", "CountJoinedBetween", "failed to count joined members", err)
	}
	return count, nil
}

// CountWithPointsAbove counts members with strictly more than threshold points.
func (r *MemberRepository) CountWithPointsAbove(ctx context.Context, threshold member.ActivityPoints) (int, error) {
	query := `SELECT COUNT(*) FROM members WHERE activity_points > $1`

	var count int
	if err := r.conn.QueryRow(ctx, query, int(threshold)).Scan(&count); err != nil {
		return 0, storeError("member", "CountWithPointsAbove", "failed to count active members", err)
	}
	return count, nil
}

// AverageAttendanceRate returns the mean stored rate, 0 with no members.
func (r *MemberRepository) AverageAttendanceRate(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(attendance_rate), 0) FROM members`

	var avg float64
	if err := r.conn.QueryRow(ctx, query).Scan(&avg); err != nil {
		return 0, storeError("member", "AverageAttendanceRate", "failed to average attendance rate", err)
	}
	return avg, nil
}

// TopByActivity returns up to limit members, points descending, ties by
// telegram_id ascending so repeated calls order identically.
func (r *MemberRepository) TopByActivity(ctx context.Context, limit int) ([]member.Ranked, error) {
	query := `
		SELECT telegram_id, display_name, activity_points
		FROM members
		ORDER BY activity_points DESC, telegram_id ASC
		LIMIT $1
	`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError("member", "TopByActivity", "failed to query top members", err)
	}
	defer rows.Close()

	var ranked []member.Ranked
	for rows.Next() {
		var (
			id     int64
			name   string
			points int
		)
		if err := rows.Scan(&id, &name, &points); err != nil {
			return nil, storeError("member", "TopByActivity", "failed to scan ranked member", err)
		}
		ranked = append(ranked, member.Ranked{
			TelegramID:  member.TelegramID(id),
			DisplayName: name,
			Points:      member.ActivityPoints(points),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("member", "TopByActivity", "failed to read ranked members", err)
	}

	return ranked, nil
}

// ListNames returns all member display names in join order.
func (r *MemberRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.conn.Query(ctx, `SELECT display_name FROM members ORDER BY joined_at ASC, telegram_id ASC`)
	if err != nil {
		return nil, storeError("member", "ListNames", "failed to list member names", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storeError("member", "ListNames", "failed to scan member name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("member", "ListNames", "failed to read member names", err)
	}

	return names, nil
}
