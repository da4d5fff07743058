package ports

import (
	"context"
	"time"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

// CreateAccountInput carries all data needed to register a new account.
// Role may be empty, in which case domain.DefaultRole is applied.
type CreateAccountInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	Role        string
}

// UpdateAccountInput is a partial update: nil fields are left untouched.
// There is no CreatedAt field; creation time is immutable after insert.
type UpdateAccountInput struct {
	Username    *string
	Password    *string
	Email       *string
	FirstName   *string
	LastName    *string
	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
	LastLogin   *time.Time
	Role        *string
}

// ListAccountsInput carries all parameters for the account list operation.
type ListAccountsInput struct {
	Role     string
	IsStaff  *bool
	IsActive *bool
	Page     int
	Limit    int
}

// ListAccountsResult is returned by List.
type ListAccountsResult struct {
	Items      []*domain.Account
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AccountService defines use-case operations on the account directory.
type AccountService interface {
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Get(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, username string, input UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context, input ListAccountsInput) (*ListAccountsResult, error)
}
