package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fyp-portal/directory-service/internal/core/domain"
	"github.com/fyp-portal/directory-service/internal/core/ports"
	"github.com/fyp-portal/directory-service/internal/metrics"
)

// SupervisorService implements the supervisor roster use cases.
type SupervisorService struct {
	repo     ports.SupervisorRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewSupervisorService(repo ports.SupervisorRepository, logger zerolog.Logger) *SupervisorService {
	return &SupervisorService{repo: repo, validate: validator.New(), logger: logger}
}

// Create adds a roster entry. The email must be syntactically valid and
// globally unique; uniqueness is enforced atomically by the store.
func (s *SupervisorService) Create(ctx context.Context, input ports.CreateSupervisorInput) (*domain.Supervisor, error) {
	fields := supervisorFields{Name: input.Name, Email: input.Email, Department: input.Department}
	if err := checkStruct(s.validate, fields); err != nil {
		metrics.WritesRejectedTotal.WithLabelValues("supervisor", "validation").Inc()
		return nil, err
	}

	sup := &domain.Supervisor{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Department: input.Department,
	}

	if err := s.repo.Create(ctx, sup); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			metrics.WritesRejectedTotal.WithLabelValues("supervisor", "duplicate").Inc()
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create supervisor")
		return nil, err
	}

	metrics.SupervisorsCreatedTotal.Inc()
	s.logger.Info().Str("email", sup.Email).Str("department", sup.Department).Msg("supervisor created")
	return sup, nil
}

// Get retrieves a single roster entry by id.
func (s *SupervisorService) Get(ctx context.Context, id string) (*domain.Supervisor, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update to the roster entry identified by id.
func (s *SupervisorService) Update(ctx context.Context, id string, input ports.UpdateSupervisorInput) (*domain.Supervisor, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sup.Name = *input.Name
	}
	if input.Email != nil {
		sup.Email = *input.Email
	}
	if input.Department != nil {
		sup.Department = *input.Department
	}

	fields := supervisorFields{Name: sup.Name, Email: sup.Email, Department: sup.Department}
	if err := checkStruct(s.validate, fields); err != nil {
		metrics.WritesRejectedTotal.WithLabelValues("supervisor", "validation").Inc()
		return nil, err
	}

	if err := s.repo.Update(ctx, sup); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			metrics.WritesRejectedTotal.WithLabelValues("supervisor", "duplicate").Inc()
		}
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update supervisor")
		return nil, err
	}

	s.logger.Info().Str("email", sup.Email).Msg("supervisor updated")
	return sup, nil
}

// Delete removes a roster entry. Roster records are destroyed only through
// this explicit administrative path.
func (s *SupervisorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues("supervisor").Inc()
	s.logger.Info().Str("id", id).Msg("supervisor deleted")
	return nil
}

// List returns a page of roster entries. Search is a case-insensitive
// substring match over name, email and department.
func (s *SupervisorService) List(ctx context.Context, input ports.ListSupervisorsInput) (*ports.ListSupervisorsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.ListSupervisorsFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list supervisors")
		return nil, err
	}

	return &ports.ListSupervisorsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
