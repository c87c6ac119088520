package postgres

import (
	"context"

	"github.com/bahadir04/grupa247-bot/internal/domain/member"
	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
)

// ══════════════════════════════════════════════════════════════════════════════
// PERFORMANCE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// PerformanceRepository implements performance.Repository for PostgreSQL.
type PerformanceRepository struct {
	conn *Connection
}

// NewPerformanceRepository creates a new PerformanceRepository.
func NewPerformanceRepository(conn *Connection) *PerformanceRepository {
	return &PerformanceRepository{conn: conn}
}

// GlobalAverage returns the mean grade over all entries, 0 when empty.
func (r *PerformanceRepository) GlobalAverage(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(AVG(grade), 0) FROM performance_entries`

	var avg float64
	if err := r.conn.QueryRow(ctx, query).Scan(&avg); err != nil {
		return 0, storeError("performance", "GlobalAverage", "failed to average grades", err)
	}
	return avg, nil
}

// SubjectAverages groups by exact subject string, ordered lexicographically.
func (r *PerformanceRepository) SubjectAverages(ctx context.Context) ([]performance.SubjectAverage, error) {
	query := `
		SELECT subject, AVG(grade)
		FROM performance_entries
		GROUP BY subject
		ORDER BY subject ASC
	`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, storeError("performance", "SubjectAverages", "failed to query subject averages", err)
	}
	defer rows.Close()

	var averages []performance.SubjectAverage
	for rows.Next() {
		var sa performance.SubjectAverage
		if err := rows.Scan(&sa.Subject, &sa.Average); err != nil {
			return nil, storeError("performance", "SubjectAverages", "failed to scan subject average", err)
		}
		averages = append(averages, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("performance", "SubjectAverages", "failed to read subject averages", err)
	}

	return averages, nil
}

// ListRecent returns up to limit entries, most recent insertion first.
func (r *PerformanceRepository) ListRecent(ctx context.Context, limit int) ([]performance.Entry, error) {
	query := `
		SELECT id, member_id, subject, grade, recorded_at
		FROM performance_entries
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, storeError("performance", "ListRecent", "failed to list performance entries", err)
	}
	defer rows.Close()

	var entries []performance.Entry
	for rows.Next() {
		var (
			e        performance.Entry
			memberID int64
		)
		if err := rows.Scan(&e.ID, &memberID, &e.Subject, &e.Grade, &e.RecordedAt); err != nil {
			return nil, storeError("performance", "ListRecent", "failed to scan performance entry", err)
		}
		e.MemberID = member.TelegramID(memberID)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("performance", "ListRecent", "failed to read performance entries", err)
	}

	return entries, nil
}
