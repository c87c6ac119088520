package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadir04/grupa247-bot/internal/domain/performance"
	"github.com/bahadir04/grupa247-bot/pkg/timeutil"
)

func TestGetPerformanceStats_GlobalAndPerSubject(t *testing.T) {
	repo := &fakePerformanceRepo{entries: []performance.Entry{
		{MemberID: 1, Subject: "Math", Grade: 90},
		{MemberID: 2, Subject: "Math", Grade: 80},
		{MemberID: 1, Subject: "Physics", Grade: 70},
	}}
	h := NewGetPerformanceStatsHandler(repo, timeutil.FixedClock(timeutil.Now()))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 80.0, result.GlobalAverage, 1e-9)
	require.Len(t, result.Subjects, 2)
	// Lexicographic subject order.
	assert.Equal(t, "Math", result.Subjects[0].Subject)
	assert.InDelta(t, 85.0, result.Subjects[0].Average, 1e-9)
	assert.Equal(t, "Physics", result.Subjects[1].Subject)
	assert.InDelta(t, 70.0, result.Subjects[1].Average, 1e-9)
}

func TestGetPerformanceStats_SubjectsGroupByExactString(t *testing.T) {
	repo := &fakePerformanceRepo{entries: []performance.Entry{
		{MemberID: 1, Subject: "math", Grade: 60},
		{MemberID: 2, Subject: "Math", Grade: 100},
	}}
	h := NewGetPerformanceStatsHandler(repo, timeutil.FixedClock(timeutil.Now()))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	// "Math" and "math" are distinct subjects.
	require.Len(t, result.Subjects, 2)
	assert.Equal(t, "Math", result.Subjects[0].Subject)
	assert.Equal(t, "math", result.Subjects[1].Subject)
}

func TestGetPerformanceStats_EmptyStore(t *testing.T) {
	h := NewGetPerformanceStatsHandler(&fakePerformanceRepo{}, timeutil.FixedClock(timeutil.Now()))

	result, err := h.Handle(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.GlobalAverage)
	assert.Empty(t, result.Subjects)
}
