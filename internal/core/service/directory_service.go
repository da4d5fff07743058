package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fyp-portal/directory-service/internal/core/domain"
	"github.com/fyp-portal/directory-service/internal/core/ports"
)

// DirectoryService aggregates read-only statistics across both directories.
type DirectoryService struct {
	accounts    ports.AccountRepository
	supervisors ports.SupervisorRepository
	logger      zerolog.Logger
}

func NewDirectoryService(accounts ports.AccountRepository, supervisors ports.SupervisorRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{accounts: accounts, supervisors: supervisors, logger: logger}
}

// Stats returns account counts per role and the supervisor roster size.
// Roles with no accounts are reported as zero so dashboards always see the
// full enumeration.
func (s *DirectoryService) Stats(ctx context.Context) (*ports.DirectoryStats, error) {
	byRole, err := s.accounts.CountByRole(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count accounts")
		return nil, err
	}

	counts := make(map[domain.Role]int64, len(domain.Roles))
	var total int64
	for _, r := range domain.Roles {
		counts[r] = byRole[r]
		total += byRole[r]
	}

	supervisors, err := s.supervisors.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count supervisors")
		return nil, err
	}

	return &ports.DirectoryStats{
		TotalAccounts:    total,
		AccountsByRole:   counts,
		TotalSupervisors: supervisors,
	}, nil
}
