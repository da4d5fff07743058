package ports

import (
	"context"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

// CreateSupervisorInput carries all data for a new roster entry.
type CreateSupervisorInput struct {
	Name       string
	Email      string
	Department string
}

// UpdateSupervisorInput is a partial update: nil fields are left untouched.
type UpdateSupervisorInput struct {
	Name       *string
	Email      *string
	Department *string
}

// ListSupervisorsInput carries all parameters for the roster list operation.
type ListSupervisorsInput struct {
	Search string
	Page   int
	Limit  int
}

// ListSupervisorsResult is returned by List.
type ListSupervisorsResult struct {
	Items      []*domain.Supervisor
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SupervisorService defines use-case operations on the supervisor directory.
type SupervisorService interface {
	Create(ctx context.Context, input CreateSupervisorInput) (*domain.Supervisor, error)
	Get(ctx context.Context, id string) (*domain.Supervisor, error)
	Update(ctx context.Context, id string, input UpdateSupervisorInput) (*domain.Supervisor, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, input ListSupervisorsInput) (*ListSupervisorsResult, error)
}
