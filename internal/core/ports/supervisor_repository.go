package ports

import (
	"context"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

// ListSupervisorsFilter carries the query parameters for listing supervisors.
type ListSupervisorsFilter struct {
	Search string // optional: case-insensitive substring over name, email, department
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by the service)
}

// SupervisorRepository defines persistence operations for the supervisor
// roster. Email uniqueness is enforced atomically by the store; a violating
// write is rejected whole and surfaces as domain.ErrEmailTaken.
type SupervisorRepository interface {
	Create(ctx context.Context, s *domain.Supervisor) error
	FindByID(ctx context.Context, id string) (*domain.Supervisor, error)
	Update(ctx context.Context, s *domain.Supervisor) error
	Delete(ctx context.Context, id string) error
	// List returns a page of supervisors matching filter and the total count.
	List(ctx context.Context, filter ListSupervisorsFilter) ([]*domain.Supervisor, int64, error)
	Count(ctx context.Context) (int64, error)
}
