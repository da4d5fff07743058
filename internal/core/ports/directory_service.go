package ports

import (
	"context"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

// DirectoryStats is an aggregate snapshot of both directories for the
// back-office dashboard. Account and supervisor counts are reported side by
// side; the two record kinds stay unlinked.
type DirectoryStats struct {
	TotalAccounts    int64
	AccountsByRole   map[domain.Role]int64
	TotalSupervisors int64
}

// DirectoryService exposes cross-directory read operations.
type DirectoryService interface {
	Stats(ctx context.Context) (*DirectoryStats, error)
}
