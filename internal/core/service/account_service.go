package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fyp-portal/directory-service/internal/core/domain"
	"github.com/fyp-portal/directory-service/internal/core/ports"
	"github.com/fyp-portal/directory-service/internal/metrics"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AccountService implements the account directory use cases.
type AccountService struct {
	repo     ports.AccountRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, validate: validator.New(), logger: logger}
}

// Create registers a new account. CreatedAt is stamped exactly once, here,
// and no later operation touches it. An empty role falls back to
// domain.DefaultRole; any other value outside the enumerated set is rejected.
func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	role := domain.Role(input.Role)
	if input.Role == "" {
		role = domain.DefaultRole
	}

	fields := accountFields{Username: input.Username, Email: input.Email, Role: string(role)}
	if err := checkStruct(s.validate, fields); err != nil {
		metrics.WritesRejectedTotal.WithLabelValues("account", "validation").Inc()
		return nil, err
	}
	if input.Password == "" {
		metrics.WritesRejectedTotal.WithLabelValues("account", "validation").Inc()
		return nil, domain.NewValidationError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:        uuid.NewString(),
		Role:      role,
		CreatedAt: time.Now().UTC(),
		Identity: domain.Identity{
			Username:     input.Username,
			PasswordHash: string(hash),
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			IsActive:     input.IsActive,
			IsStaff:      input.IsStaff,
			IsSuperuser:  input.IsSuperuser,
		},
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			metrics.WritesRejectedTotal.WithLabelValues("account", "duplicate").Inc()
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create account")
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("username", account.Username).Str("role", string(role)).Msg("account created")
	return account, nil
}

// Get retrieves a single account by username.
func (s *AccountService) Get(ctx context.Context, username string) (*domain.Account, error) {
	return s.repo.FindByUsername(ctx, username)
}

// Update applies a partial update to the account identified by username.
// Every field except CreatedAt may change; a supplied password is re-hashed.
func (s *AccountService) Update(ctx context.Context, username string, input ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		account.Username = *input.Username
	}
	if input.Email != nil {
		account.Email = *input.Email
	}
	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	if input.IsStaff != nil {
		account.IsStaff = *input.IsStaff
	}
	if input.IsSuperuser != nil {
		account.IsSuperuser = *input.IsSuperuser
	}
	if input.LastLogin != nil {
		t := input.LastLogin.UTC()
		account.LastLogin = &t
	}
	if input.Role != nil {
		account.Role = domain.Role(*input.Role)
	}

	fields := accountFields{Username: account.Username, Email: account.Email, Role: string(account.Role)}
	if err := checkStruct(s.validate, fields); err != nil {
		metrics.WritesRejectedTotal.WithLabelValues("account", "validation").Inc()
		return nil, err
	}

	if input.Password != nil {
		if *input.Password == "" {
			metrics.WritesRejectedTotal.WithLabelValues("account", "validation").Inc()
			return nil, domain.NewValidationError("password", "is required")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, account); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			metrics.WritesRejectedTotal.WithLabelValues("account", "duplicate").Inc()
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to update account")
		return nil, err
	}

	s.logger.Info().Str("username", account.Username).Str("role", string(account.Role)).Msg("account updated")
	return account, nil
}

// Delete removes an account. Records are destroyed only through this
// explicit administrative path.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("account").Inc()
	s.logger.Info().Str("username", username).Msg("account deleted")
	return nil
}

// List returns a page of accounts with exact-match filters on role, staff
// and active flags.
func (s *AccountService) List(ctx context.Context, input ports.ListAccountsInput) (*ports.ListAccountsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	if input.Role != "" && !domain.Role(input.Role).Valid() {
		return nil, domain.NewValidationError("role", "must be one of: student supervisor admin public")
	}

	filter := ports.ListAccountsFilter{
		Role:     input.Role,
		IsStaff:  input.IsStaff,
		IsActive: input.IsActive,
		Page:     page,
		Limit:    limit,
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list accounts")
		return nil, err
	}

	return &ports.ListAccountsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// normalizePage applies defaults and the hard cap to pagination parameters.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
