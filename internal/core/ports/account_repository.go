package ports

import (
	"context"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

// ListAccountsFilter carries the query parameters for listing accounts.
// All filters are exact-match; nil pointer fields mean "no filter".
type ListAccountsFilter struct {
	Role     string // optional: filter by role tag
	IsStaff  *bool  // optional: filter by staff flag
	IsActive *bool  // optional: filter by active flag
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by the service)
}

// AccountRepository defines persistence operations for account records.
// The store enforces username uniqueness atomically; a violating write is
// rejected whole and surfaces as domain.ErrUsernameTaken.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// Update replaces every mutable field of the stored record identified by
	// a.ID. CreatedAt is never written by implementations.
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, username string) error
	// List returns a page of accounts matching filter and the total count.
	List(ctx context.Context, filter ListAccountsFilter) ([]*domain.Account, int64, error)
	// CountByRole returns the number of accounts per role tag.
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}
