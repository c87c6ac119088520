package shared_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadir04/grupa247-bot/internal/domain/shared"
)

func TestDomainError_MatchesKind(t *testing.T) {
	err := shared.NewDomainError("member", "Count", shared.ErrStoreUnavailable, "failed to count members", errors.New("connection refused"))

	assert.True(t, errors.Is(err, shared.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestDomainError_UnwrapsUnderlying(t *testing.T) {
	underlying := errors.New("connection refused")
	err := shared.NewDomainError("attendance", "TallyBetween", shared.ErrStoreUnavailable, "failed to tally attendance", underlying)

	assert.True(t, errors.Is(err, underlying))
}

func TestDomainError_ErrorString(t *testing.T) {
	withCause := shared.NewDomainError("member", "Upsert", shared.ErrStoreUnavailable, "failed to upsert member", errors.New("timeout"))
	assert.Equal(t, "member.Upsert: failed to upsert member: timeout", withCause.Error())

	withoutCause := shared.NewDomainError("member", "Upsert", shared.ErrStoreUnavailable, "failed to upsert member", nil)
	assert.Equal(t, "member.Upsert: failed to upsert member", withoutCause.Error())
}

func TestDomainError_SurvivesWrapping(t *testing.T) {
	err := shared.NewDomainError("performance", "GlobalAverage", shared.ErrStoreUnavailable, "failed to average grades", nil)
	wrapped := errors.Join(errors.New("get performance stats"), err)

	require.True(t, errors.Is(wrapped, shared.ErrStoreUnavailable))

	var de *shared.DomainError
	require.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "performance", de.Domain)
	assert.Equal(t, "GlobalAverage", de.Op)
}
