package postgres

import (
	"github.com/bahadir04/grupa247-bot/internal/domain/shared"
)

// storeError wraps a failed store call as a shared.DomainError with kind
// ErrStoreUnavailable, so callers can classify it with errors.Is without
// importing pgx.
func storeError(domain, op, message string, err error) error {
	return shared.NewDomainError(domain, op, shared.ErrStoreUnavailable, message, err)
}
